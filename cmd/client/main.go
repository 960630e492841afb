package main

import "passkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
