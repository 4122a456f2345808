package main

import "substation-reconciler/cmd"

func main() {
	cmd.Execute()
}
