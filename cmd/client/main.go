package main

import "resolucity/cmd/client/cmd"

func main() {
	cmd.Execute()
}
