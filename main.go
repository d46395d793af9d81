package main

import "retail-storage/cmd"

func main() {
	cmd.Execute()
}
