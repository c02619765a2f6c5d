package main

import (
	"github.com/byxorna/storefront/cmd"
)

func main() {
	cmd.Execute()
}
