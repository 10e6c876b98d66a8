package main

import "democtl/internal/cli"

func main() {
	cli.Execute()
}
