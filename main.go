package main

import "github.com/user/bountyx-ai/cmd"

func main() {
	cmd.Execute()
}
