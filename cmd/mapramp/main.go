// mapramp - colour scales and legends for map features
//
// mapramp classifies numeric feature values into display colours and renders
// the legend that explains them.
package main

import "github.com/jmylchreest/mapramp/internal/cli"

func main() {
	cli.Execute()
}
