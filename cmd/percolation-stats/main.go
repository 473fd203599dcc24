// Command percolation-stats estimates the percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// Usage:
//
//	percolation-stats 200 100
//	percolation-stats --workers 8 --report run.toml 512 1000
//	percolation-stats replay input20.txt
package main

import "github.com/katalvlaran/percolation/internal/cli"

func main() {
	cli.Execute()
}
