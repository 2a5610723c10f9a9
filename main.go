package main

import "github.com/stuttgart-things/ghsecrets/cmd"

func main() {
	cmd.Execute()
}
