// Package main - graphcrypt derives a 128-bit block cipher and keystream
// from the topology of a seed-generated graph on 256 vertices.
package main

import "github.com/bgallie/graphcrypt/cmd"

func main() {
	cmd.Execute()
}
