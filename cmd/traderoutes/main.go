package main

import (
	"github.com/sectorwars/traderoutes/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
