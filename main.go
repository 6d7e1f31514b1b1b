// Package main provides the entry point for the github-orgs CLI tool.
package main

import "github.com/naka-gawa/github-orgs/cmd"

func main() {
	cmd.Execute()
}
