package main

import "github.com/rnwolfe/deckstats/cmd"

func main() {
	cmd.Execute()
}
