package main

import "github.com/geoknoesis/ssap-go/internal/cli"

func main() {
	cli.Execute()
}
