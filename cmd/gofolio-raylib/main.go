package main

import "github.com/philipparndt/gofolio/cmd"

func main() {
	cmd.Execute()
}
