package main

import "github.com/MyelinBots/ecochat-go/cmd"

func main() {
	cmd.Execute()
}
