package main

import "chatnav/cmd"

func main() {
	cmd.Execute()
}
