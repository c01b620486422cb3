// Command wayfind loads a graph description file and runs one of the four
// search strategies between two nodes, printing the found path and its cost.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
