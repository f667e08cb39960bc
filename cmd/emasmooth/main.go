package main

import (
	"github.com/c9s/bbgo-ema/pkg/cmd"
)

func main() {
	cmd.Execute()
}
