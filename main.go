package main

import "github.com/juanibiapina/layouts/cmd"

func main() {
	cmd.Execute()
}
