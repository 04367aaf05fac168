package main

import "calc/cmd"

func main() {
	cmd.Execute()
}
