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
	"bufio"
	"io"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/lines"
	"github.com/spf13/cobra"
)

var (
	genCount   int64
	useASCII85 bool
)

// generateCmd streams pseudorandom bytes derived from the seed's topology.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pseudorandom byte stream from a seed",
	Long:  `Generate a counter-mode keystream derived from the topology of the seed's graph.`,
	Run: func(cmd *cobra.Command, args []string) {
		generate(args)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64VarP(&genCount, "count", "n", 1024, "number of bytes to generate")
	generateCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "encode output using ASCII85")
}

func generate(args []string) {
	seed := initEngine(args)
	loadCounter(seed)
	_, fout := getInputAndOutputFiles()
	defer fout.Close()

	data, err := engine.GenerateBytes(int(genCount))
	cobra.CheckErr(err)
	saveCounter(seed)

	if useASCII85 {
		pr, pw := io.Pipe()
		go func() {
			defer pw.Close()
			_, werr := pw.Write(data)
			cobra.CheckErr(werr)
		}()
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(pr)))
		cobra.CheckErr(err)
	} else {
		w := bufio.NewWriter(fout)
		_, err = w.Write(data)
		cobra.CheckErr(err)
		cobra.CheckErr(w.Flush())
	}
}
