// Copyright 2012, 2013 Canonical Ltd.
// Licensed under the LGPLv3, see LICENSE file for details.

package cmd

import (
	"fmt"
)

// versionCommand is a cmd.Command that prints the current version.
type versionCommand struct {
	CommandBase
	version string
}

func newVersionCommand(version string) *versionCommand {
	return &versionCommand{
		version: version,
	}
}

func (v *versionCommand) Info() *Info {
	return &Info{
		Name:    "version",
		Purpose: "Print the current version.",
	}
}

func (v *versionCommand) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Stdout, v.version)
	return err
}
