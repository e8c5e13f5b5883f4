package main

import "github.com/specminer/core/internal/cli"

func main() {
	cli.Execute()
}
