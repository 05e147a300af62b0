package main

import "github.com/notargets/meshfield/cmd"

func main() {
	cmd.Execute()
}
