// Package main is the entry point for the classwalk CLI.
package main

import "classwalk.dev/pkg/classwalk/cmd"

func main() {
	cmd.Execute()
}
