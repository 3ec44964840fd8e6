// Package main is the entry point for the huemap application.
package main

import (
	"github.com/huemap-cli/huemap/cmd"
	"github.com/huemap-cli/huemap/config"
	"github.com/huemap-cli/huemap/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
