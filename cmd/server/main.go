package main

import (
	"os"

	"github.com/ecomshop/shop-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
