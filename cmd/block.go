/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var blockIndex int64

// blockCmd emits a single 16-byte keystream block at a chosen counter
// index, useful for cross-checking a single block between implementations
// (spec.md §8 scenario 2).
var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Print a single 16-byte keystream block as hex",
	Run: func(cmd *cobra.Command, args []string) {
		block(args)
	},
}

func init() {
	rootCmd.AddCommand(blockCmd)
	blockCmd.Flags().Int64VarP(&blockIndex, "index", "n", 0, "counter index of the block to emit")
}

func block(args []string) {
	initEngine(args)

	var b [16]byte
	for i := int64(0); i <= blockIndex; i++ {
		b = engine.GenerateBlock()
	}

	fmt.Println(hex.EncodeToString(b[:]))
}
