// Command derr propagates measurement uncertainty through arithmetic.
package main

import (
	"os"

	"github.com/roach88/derr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
