package main

import "mmpa/internal/cli"

func main() {
	cli.Execute()
}
