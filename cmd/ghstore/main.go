package main

import "github.com/ghstore-dev/ghstore/internal/cli"

func main() {
	cli.Execute()
}
