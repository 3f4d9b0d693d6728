package main

import (
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
