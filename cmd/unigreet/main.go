package main

import "github.com/blacktop/go-unigreet/cmd/unigreet/cmd"

func main() {
	cmd.Execute()
}
