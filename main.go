package main

import "scaffgen/cmd"

func main() {
	cmd.Execute()
}
