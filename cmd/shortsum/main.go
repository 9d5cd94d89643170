package main

import "github.com/djcass44/shortsum/cmd"

var version = "0.0.0-dev"

func main() {
	cmd.Execute(version)
}
