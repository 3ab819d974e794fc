// Command cellsociety runs cellular automaton simulations.
package main

import "cell-society/internal/cli"

func main() {
	cli.Execute()
}
