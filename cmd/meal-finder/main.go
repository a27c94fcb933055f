// Command meal-finder is the terminal front end of Meal Finder.
package main

import (
	"os"

	"github.com/ytget/meal-finder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
