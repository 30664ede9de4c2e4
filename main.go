package main

import "ban/cmd"

func main() {
	cmd.Execute()
}
