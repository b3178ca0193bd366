package main

import "github.com/tmxtools/tmxplore/cmd/tmxplore/cmd"

func main() {
	cmd.Execute()
}
