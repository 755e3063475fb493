// Package main is the entry point for the wirefuzz CLI.
package main

import "wirefuzz.dev/pkg/wirefuzz/cmd"

func main() {
	cmd.Execute()
}
