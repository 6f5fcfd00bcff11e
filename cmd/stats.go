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
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd prints the diagnostic accessor from spec.md §6: graph size,
// edge count, and how far the derived S-box diverges from plain AES.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print graph and S-box diagnostics for a seed",
	Run: func(cmd *cobra.Command, args []string) {
		stats(args)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func stats(args []string) {
	initEngine(args)
	s := engine.Stats()
	fmt.Printf("nodes:              %d\n", s.Nodes)
	fmt.Printf("edges:              %d\n", s.Edges)
	fmt.Printf("sbox_diff_from_aes: %d\n", s.SBoxDiffFromAES)
	fmt.Printf("average_clustering: %.6f\n", s.AverageClustering)
	fmt.Printf("density:            %.6f\n", s.Density)
}
