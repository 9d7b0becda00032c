package main

import (
	"fmt"
	"os"

	"github.com/m0t0k1ch1/ygo-deckcode-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
