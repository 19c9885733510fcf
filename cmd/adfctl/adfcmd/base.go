// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package adfcmd holds the functionality shared by adfctl commands:
// configuration flags, loading and access to Azure APIs.
package adfcmd

import (
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

var logger = loggo.GetLogger("adfctl.cmd.adfcmd")

// DefaultEnvFile is read, if present, when --env-file is not given.
const DefaultEnvFile = ".env"

// CommandBase is embedded by commands that need configuration and
// Azure access.
type CommandBase struct {
	cmd.CommandBase

	configFile    string
	envFile       string
	resourceGroup string
	factory       string

	apiFactory APIFactory
	overrides  map[string]any
}

// NewCommandBase returns a CommandBase using the given APIFactory. A
// nil factory talks to Azure.
func NewCommandBase(apiFactory APIFactory) CommandBase {
	if apiFactory == nil {
		apiFactory = NewAzureAPIFactory()
	}
	return CommandBase{apiFactory: apiFactory}
}

// SetFlags adds the configuration flags common to all commands.
func (c *CommandBase) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.configFile, "config", "", "Path to a YAML file of configuration attributes")
	f.StringVar(&c.envFile, "env-file", "", "Path to a dotenv file (defaults to "+DefaultEnvFile+" if present)")
	f.StringVar(&c.resourceGroup, "g", "", "Resource group to operate in")
	f.StringVar(&c.resourceGroup, "resource-group", "", "")
	f.StringVar(&c.factory, "data-factory", "", "Name of the data factory")
}

// Override sets a configuration attribute that takes precedence over
// every other source. Empty strings are ignored.
func (c *CommandBase) Override(key string, value any) {
	if c.overrides == nil {
		c.overrides = make(map[string]any)
	}
	c.overrides[key] = value
}

// APIFactory returns the factory used to reach Azure.
func (c *CommandBase) APIFactory() APIFactory {
	if c.apiFactory == nil {
		c.apiFactory = NewAzureAPIFactory()
	}
	return c.apiFactory
}

// LoadConfig reads the configuration from the config file, the env file,
// the environment and the command line.
func (c *CommandBase) LoadConfig(ctx *cmd.Context) (*config.Config, error) {
	params := config.LoadParams{
		Getenv:    ctx.Getenv,
		Overrides: make(map[string]any),
	}
	if c.configFile != "" {
		params.ConfigFile = ctx.AbsPath(c.configFile)
	}
	if c.envFile != "" {
		params.EnvFile = ctx.AbsPath(c.envFile)
	} else {
		params.EnvFile = ctx.AbsPath(DefaultEnvFile)
		params.EnvFileOptional = true
	}
	for k, v := range c.overrides {
		params.Overrides[k] = v
	}
	if c.resourceGroup != "" {
		params.Overrides[config.ResourceGroupKey] = c.resourceGroup
	}
	if c.factory != "" {
		params.Overrides[config.DataFactoryKey] = c.factory
	}
	cfg, err := config.Load(params)
	if err != nil {
		return nil, errors.Annotate(err, "loading configuration")
	}
	logger.Debugf("loaded configuration (env file %q)", params.EnvFile)
	return cfg, nil
}

// DataFactory loads the configuration and returns it together with a
// DataFactoryAPI for the configured factory.
func (c *CommandBase) DataFactory(ctx *cmd.Context) (*config.Config, DataFactoryAPI, error) {
	cfg, err := c.LoadConfig(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	api, err := c.APIFactory().DataFactory(cfg)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	return cfg, api, nil
}
