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
	"fmt"
	"io"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

var (
	compress bool
	usePem   bool
	framed   bool
)

// encryptCmd encrypts plaintext using the seed-derived SPN.
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt plaintext using the graph-topology derived cipher",
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding")
	encryptCmd.Flags().BoolVarP(&compress, "compress", "c", false, "compress plaintext using flate before encrypting")
	encryptCmd.Flags().BoolVarP(&framed, "framed", "f", false, "prepend an 8-byte length header so padding can be stripped on decode")
}

func encrypt(args []string) {
	seed := initEngine(args)
	loadCounter(seed)
	fin, fout := getInputAndOutputFiles()
	defer fout.Close()

	plainReader := io.Reader(fin)
	if compress {
		plainReader = flate.ToFlate(fin)
	}

	plaintext, err := io.ReadAll(plainReader)
	cobra.CheckErr(err)

	var ciphertext []byte
	if framed {
		ciphertext = engine.EncryptFramed(plaintext)
	} else {
		ciphertext = engine.Encrypt(plaintext)
	}
	saveCounter(seed)

	if usePem {
		blck := pem.Block{
			Type:    "GRAPHCRYPT Encrypted Message",
			Headers: map[string]string{"Compression": fmt.Sprintf("%v", compress), "Framed": fmt.Sprintf("%v", framed)},
		}
		bRdr := bufio.NewReader(newByteReader(ciphertext))
		_, err = io.Copy(fout, pem.ToPem(bRdr, blck))
		cobra.CheckErr(err)
	} else if useASCII85 {
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(newByteReader(ciphertext))))
		cobra.CheckErr(err)
	} else {
		_, err = fout.Write(ciphertext)
		cobra.CheckErr(err)
	}
}

// newByteReader adapts a []byte to the *io.PipeReader the filters package
// expects, mirroring the teacher's use of an io.Pipe to feed its encoding
// filters from in-memory data.
func newByteReader(data []byte) *io.PipeReader {
	pr, pw := io.Pipe()
	go func() {
		defer pw.Close()
		_, _ = pw.Write(data)
	}()
	return pr
}
