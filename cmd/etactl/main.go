package main

import (
	_ "time/tzdata"

	"github.com/Domenick1991/cargoeta/internal/cli"
)

func main() {
	cli.Execute()
}
