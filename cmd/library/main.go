// Package main provides the library CLI.
package main

import "github.com/mesh-intelligence/library/internal/cli"

func main() {
	cli.Execute()
}
