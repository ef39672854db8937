package main

import "github.com/jralvarenga/r1go.dev/cmd"

func main() {
	cmd.Execute()
}
