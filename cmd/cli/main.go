package main

import "uipcup/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
