// Command wordle-patterns reports which words in a word list produce given
// feedback patterns against a fixed solution.
package main

import (
	"fmt"
	"os"

	"github.com/benjaminjkraft/wordle-patterns/cmd"
	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, perrors.FormatForCLI(err))
		os.Exit(1)
	}
}
