package main

import "github.com/leafwise/gardenlog/cmd"

func main() {
	cmd.Execute()
}
