package main

import "streamresolve/internal/cli"

func main() {
	cli.Execute()
}
