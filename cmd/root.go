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
	"crypto/sha256"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bgallie/graphcrypt/graphcrypto"
)

var (
	cfgFile        string
	sboxMode       string
	inputFileName  string
	outputFileName string
	engine         *graphcrypto.Engine
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	Version        string = "dev"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "graphcrypt",
	Short:   "A graph-topology derived pseudorandom generator and block cipher",
	Long:    `graphcrypt derives a 128-bit block cipher and keystream from the topology of a seed-generated graph on 256 vertices.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() exactly once.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.graphcrypt.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "name of the input file")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "name of the output file")
	rootCmd.PersistentFlags().StringVar(&sboxMode, "sbox", "affine", `S-box construction mode ("affine" or "pure")`)
}

// initConfig reads in the config file and environment variables, if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".graphcrypt")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initEngine obtains the seed from, in order of preference:
//  1. args given on the command line (least secure - visible in shell history)
//  2. the GRAPHCRYPT_SECRET environment variable
//  3. an interactive passphrase prompt with echo disabled (most secure)
//
// and builds the derived Engine from it, returning the seed so callers that
// need to persist a counter (generate, encrypt) can key off it.
func initEngine(args []string) string {
	var seed string

	if len(args) != 0 {
		seed = strings.Join(args, " ")
	} else if viper.IsSet("GRAPHCRYPT_SECRET") {
		seed = viper.GetString("GRAPHCRYPT_SECRET")
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the seed: ")
		byteSeed, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		seed = string(byteSeed)
	}

	var opt graphcrypto.Option = graphcrypto.WithSBoxMode(sboxMode)
	var err error
	engine, err = graphcrypto.New([]byte(seed), opt)
	cobra.CheckErr(err)
	return seed
}

// counterKey returns the viper config key used to persist the last-used
// counter value for a given seed, mirroring the teacher's per-seed
// "counters.<key>" persistence.
func counterKey(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("counters.%x", sum[:8])
}

// loadCounter resumes engine's counter from the value persisted under
// seed's key in the viper config file, if a previous run saved one;
// otherwise the engine is left at its freshly-constructed zero counter.
// Mirrors the teacher's "viper.IsSet(mKey); iCnt.SetString(savedCnt, 10)"
// load in cmd/encrypt.go.
func loadCounter(seed string) {
	key := counterKey(seed)
	if !viper.IsSet(key) {
		return
	}
	saved := viper.GetString(key)
	n, ok := new(big.Int).SetString(saved, 10)
	if !ok {
		cobra.CheckErr(fmt.Sprintf("failed converting the saved counter to a big.Int: [%s]\n", saved))
	}
	engine.SetCounter(n)
}

// saveCounter persists engine's current counter under seed's key so the
// next run with the same seed resumes the keystream instead of restarting
// at zero. Mirrors the teacher's "viper.Set(mKey, ...); viper.WriteConfig()"
// save in cmd/encrypt.go.
func saveCounter(seed string) {
	viper.Set(counterKey(seed), engine.Counter().Text(10))
	cobra.CheckErr(viper.WriteConfig())
}

// getInputAndOutputFiles returns the input and output files to use. If
// names were given, those files are opened; otherwise stdin/stdout.
func getInputAndOutputFiles() (*os.File, *os.File) {
	var fin *os.File
	var err error

	if inputFileName == "-" || inputFileName == "" {
		fin = os.Stdin
	} else {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	}

	var fout *os.File
	if outputFileName == "-" || outputFileName == "" {
		fout = os.Stdout
	} else {
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	}

	return fin, fout
}
