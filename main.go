package main

import "pfep-analyzer/cmd"

func main() {
	cmd.Execute()
}
