// Package main is the entry point for the mediabar application.
package main

import (
	"github.com/mediabar-cli/mediabar/cmd"
	"github.com/mediabar-cli/mediabar/config"
	"github.com/mediabar-cli/mediabar/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
