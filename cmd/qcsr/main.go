package main

import "github.com/qcsr-io/qcsr/cmd/qcsr/cmd"

func main() {
	cmd.Execute()
}
