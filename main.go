package main

import "github.com/papercut-dev/papercut/cmd"

func main() {
	cmd.Execute()
}
