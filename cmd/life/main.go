package main

import (
	"fmt"
	"os"

	"github.com/j-ikonen/wasm-game-of-life/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
