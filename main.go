package main

import "gear-tracker/cmd"

func main() {
	cmd.Execute()
}
