// Command navigator searches routes on a city map.
//
//	navigator search --from Arad --to Bucharest --algorithm astar
//	navigator bench --runs 10 --format csv --metrics
//	navigator dot > map.dot
//
// Without --cities/--roads the built-in Romania map is used.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
