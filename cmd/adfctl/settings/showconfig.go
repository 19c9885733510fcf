// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package settings holds the commands that inspect configuration and
// credentials without changing any Azure resources.
package settings

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

const showConfigDoc = `
Show the effective configuration and where each value came from: the
built-in default, the --config file, the env file, the environment or a
command line flag. Secrets are masked.

Sources in increasing precedence: default, file, env-file, env, flag.
`

// NewShowConfigCommand returns a command that shows the configuration.
func NewShowConfigCommand() cmd.Command {
	return &showConfigCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type showConfigCommand struct {
	adfcmd.CommandBase

	out cmd.Output
	all bool
}

// Info implements cmd.Command.
func (c *showConfigCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "show-config",
		Purpose: "Show the effective configuration.",
		Doc:     showConfigDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *showConfigCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.BoolVar(&c.all, "all", false, "Include attributes that are not set")
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": c.formatTabular,
		"yaml":    cmd.FormatYaml,
		"json":    cmd.FormatJson,
	})
}

// configAttr is an attribute as shown in tabular output.
type configAttr struct {
	Key    string
	Value  any
	Source config.Source
}

// Run implements cmd.Command.
func (c *showConfigCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.LoadConfig(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if c.out.Name() != "tabular" {
		return errors.Trace(c.out.Write(ctx, cfg.Redacted()))
	}
	redacted := cfg.Redacted()
	var attrs []configAttr
	for _, key := range config.Keys() {
		v, ok := redacted[key]
		if !ok && !c.all {
			continue
		}
		attrs = append(attrs, configAttr{Key: key, Value: v, Source: cfg.Source(key)})
	}
	return errors.Trace(c.out.Write(ctx, attrs))
}

func (c *showConfigCommand) formatTabular(writer io.Writer, value any) error {
	attrs, ok := value.([]configAttr)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", attrs, value)
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true

	table.AddRow("Attribute", "Value", "Source", "Environment")
	for _, a := range attrs {
		value, source := "", "-"
		if a.Value != nil {
			value = fmt.Sprint(a.Value)
			source = string(a.Source)
		}
		table.AddRow(a.Key, value, source, config.EnvVar(a.Key))
	}
	fmt.Fprintln(writer, table)
	return nil
}
