// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory

import (
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/datafactory"
)

const showFactoryDoc = `
Show the configured data factory: its location, provisioning state and
creation time. A factory that does not exist is reported as not found.
`

// NewShowFactoryCommand returns a command that shows a data factory.
func NewShowFactoryCommand() cmd.Command {
	return &showFactoryCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type showFactoryCommand struct {
	adfcmd.CommandBase

	out cmd.Output
}

// Info implements cmd.Command.
func (c *showFactoryCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "show-factory",
		Purpose: "Show an Azure Data Factory.",
		Doc:     showFactoryDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *showFactoryCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatFactoryTabular,
		"yaml":    cmd.FormatYaml,
		"json":    cmd.FormatJson,
	})
}

// Run implements cmd.Command.
func (c *showFactoryCommand) Run(ctx *cmd.Context) error {
	_, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	info, err := api.GetFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.out.Write(ctx, info))
}

func formatFactoryTabular(writer io.Writer, value any) error {
	info, ok := value.(datafactory.FactoryInfo)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", info, value)
	}
	table := uitable.New()
	table.MaxColWidth = 120
	table.Wrap = true

	table.AddRow("Name:", info.Name)
	table.AddRow("Resource group:", info.ResourceGroup)
	table.AddRow("Location:", info.Location)
	if info.ProvisioningState != "" {
		table.AddRow("State:", info.ProvisioningState)
	}
	if !info.Created.IsZero() {
		table.AddRow("Created:", info.Created.Format(time.RFC3339))
	}
	if info.ID != "" {
		table.AddRow("ID:", info.ID)
	}
	fmt.Fprintln(writer, table)
	return nil
}
