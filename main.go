package main

import "github.com/alexiusacademia/gofound/cmd"

func main() {
	cmd.Execute()
}
