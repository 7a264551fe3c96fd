package main

import "github.com/Tiliavir/tt/cmd"

func main() {
	cmd.Execute()
}
