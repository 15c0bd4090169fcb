// cubesight - CLI for cube state analysis and solve recording.
package main

import (
	"github.com/cubesight/cubesight/internal/cli"
)

func main() {
	cli.Execute()
}
