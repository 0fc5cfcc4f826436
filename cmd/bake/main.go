// Command bake computes kernel Gram matrices between point sets stored in
// CSV, JSON or Excel files.
package main

import (
	"github.com/KelvyHsu/bake/internal/cli"
)

func main() {
	cli.Execute()
}
