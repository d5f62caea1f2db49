// Package main is the entry point for the fakegdate CLI tool.
package main

import "fakegdate/internal/cli"

func main() {
	cli.Execute()
}
