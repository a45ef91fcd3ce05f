package main

import "roadburn/cmd"

func main() {
	cmd.Execute()
}
