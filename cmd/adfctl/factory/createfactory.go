// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/utils/v4/keyvalues"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

const createFactoryDoc = `
Create the configured data factory in the configured resource group
and location. An existing factory with the same name is updated.

With --create-resource-group, or CREATE_RESOURCE_GROUP=true, the resource
group is created in the same location first if it does not exist.
`

const createFactoryExamples = `
    adfctl create-factory
    adfctl create-factory --location "East US" --tags env=dev,owner=data
    adfctl create-factory -g analytics --data-factory sales-adf --create-resource-group
`

// NewCreateFactoryCommand returns a command that creates a data factory.
func NewCreateFactoryCommand() cmd.Command {
	return &createFactoryCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type createFactoryCommand struct {
	adfcmd.CommandBase

	location            string
	createResourceGroup bool
	tagsArg             string
	tags                map[string]string
}

// Info implements cmd.Command.
func (c *createFactoryCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "create-factory",
		Purpose:  "Create an Azure Data Factory.",
		Doc:      createFactoryDoc,
		Examples: createFactoryExamples,
	}
}

// SetFlags implements cmd.Command.
func (c *createFactoryCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.location, "location", "", "Azure region of the factory")
	f.BoolVar(&c.createResourceGroup, "create-resource-group", false, "Create the resource group if it does not exist")
	f.StringVar(&c.tagsArg, "tags", "", "Comma separated key=value tags for the factory")
}

// Init implements cmd.Command.
func (c *createFactoryCommand) Init(args []string) error {
	tags, err := parseTags(c.tagsArg)
	if err != nil {
		return errors.Trace(err)
	}
	c.tags = tags
	return c.CommandBase.Init(args)
}

// Run implements cmd.Command.
func (c *createFactoryCommand) Run(ctx *cmd.Context) error {
	c.Override(config.LocationKey, c.location)
	if c.createResourceGroup {
		c.Override(config.CreateResourceGroupKey, true)
	}
	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if cfg.CreateResourceGroup() {
		msg, err := ensureResourceGroup(ctx, c.APIFactory(), cfg)
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Fprintln(ctx.Stdout, msg)
	}
	msg, err := createFactory(ctx, api, cfg, c.tags)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, msg)
	return nil
}

// parseTags parses "k1=v1,k2=v2".
func parseTags(arg string) (map[string]string, error) {
	if arg == "" {
		return nil, nil
	}
	var pairs []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pairs = append(pairs, p)
		}
	}
	tags, err := keyvalues.Parse(pairs, true)
	if err != nil {
		return nil, errors.Annotate(err, "parsing tags")
	}
	return tags, nil
}
