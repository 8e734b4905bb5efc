package main

import "github.com/hashsdn/hashsdn-yangtools/internal/cli"

func main() {
	cli.Execute()
}
