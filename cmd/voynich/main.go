// Command voynich counts letter and white space symbols in a text file and
// maps the most frequent ones onto Latin letters by English frequency rank.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
