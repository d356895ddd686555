package main

import "github.com/alexiusacademia/rcbdxf/cmd"

func main() {
	cmd.Execute()
}
