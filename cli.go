//go:build cli
// +build cli

package main

import (
	_ "equiprent.GO/custom"

	"equiprent.GO/cmd"
	"equiprent.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
