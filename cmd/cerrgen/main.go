package main

import "github.com/reoring/cerrgen/internal/cli"

func main() {
	cli.Execute()
}
