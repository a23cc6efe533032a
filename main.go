package main

import "github.com/BioBenchWorks/nanoqc-cli/cmd"

func main() {
	cmd.Execute()
}
