package main

import "github.com/N3moAhead/household/internal/cli"

func main() {
	cli.Execute()
}
