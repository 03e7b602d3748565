package main

import "github.com/kcaldas/craftkit/cmd/cli"

func main() {
	cli.Execute()
}
