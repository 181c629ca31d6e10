package main

import (
	"github.com/retracehq/retrace/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
