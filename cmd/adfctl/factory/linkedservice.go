// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

const createBlobLinkedServiceDoc = `
Create an Azure Blob Storage linked service in the configured data factory.

By default the linked service is named by BLOB_STORAGE_LINKED_SERVICE_NAME
and connects to BLOB_STORAGE_ACCOUNT_NAME. With --data-lake it is named by
DATA_LAKE_LINKED_SERVICE and connects to STORAGE_ACCOUNT_NAME instead.

If no account key is configured the first key with full permissions is
read from the storage account, which must be in the resource group given
by STORAGE_ACCOUNT_RESOURCE_GROUP (default RESOURCE_GROUP_NAME). A
configured key is ignored when --account is given.
`

// NewCreateBlobLinkedServiceCommand returns a command that creates a Blob
// Storage linked service.
func NewCreateBlobLinkedServiceCommand() cmd.Command {
	return &createBlobLinkedServiceCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type createBlobLinkedServiceCommand struct {
	adfcmd.CommandBase

	name     string
	account  string
	dataLake bool
}

// Info implements cmd.Command.
func (c *createBlobLinkedServiceCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "create-blob-linked-service",
		Args:    "[<name>]",
		Purpose: "Create a Blob Storage linked service.",
		Doc:     createBlobLinkedServiceDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *createBlobLinkedServiceCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.account, "account", "", "Storage account to connect to")
	f.BoolVar(&c.dataLake, "data-lake", false, "Create the data lake linked service")
}

// Init implements cmd.Command.
func (c *createBlobLinkedServiceCommand) Init(args []string) (err error) {
	c.name, err = cmd.ZeroOrOneArgs(args)
	return errors.Trace(err)
}

// Run implements cmd.Command.
func (c *createBlobLinkedServiceCommand) Run(ctx *cmd.Context) error {
	nameAttr, accountAttr := config.BlobLinkedServiceKey, config.BlobStorageAccountNameKey
	if c.dataLake {
		nameAttr, accountAttr = config.DataLakeLinkedServiceKey, config.StorageAccountNameKey
	}
	c.Override(nameAttr, c.name)
	c.Override(accountAttr, c.account)

	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	ls := blobLinkedService(cfg)
	if c.dataLake {
		ls = dataLakeLinkedService(cfg)
	}
	if c.account != "" {
		ls.key = ""
	}
	msg, err := createStorageLinkedService(ctx, c.APIFactory(), api, cfg, ls)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, msg)
	return nil
}

const createSQLLinkedServiceDoc = `
Create an Azure SQL Database linked service in the configured data factory.

The connection uses SQL_SERVER_NAME, SQL_DATABASE_NAME, ADMIN_USER and
ADMIN_PASSWORD. The linked service is named by SQL_LINKED_SERVICE unless a
name is given.
`

// NewCreateSQLLinkedServiceCommand returns a command that creates a SQL
// Database linked service.
func NewCreateSQLLinkedServiceCommand() cmd.Command {
	return &createSQLLinkedServiceCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type createSQLLinkedServiceCommand struct {
	adfcmd.CommandBase

	name     string
	server   string
	database string
}

// Info implements cmd.Command.
func (c *createSQLLinkedServiceCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "create-sql-linked-service",
		Args:    "[<name>]",
		Purpose: "Create a SQL Database linked service.",
		Doc:     createSQLLinkedServiceDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *createSQLLinkedServiceCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.server, "server", "", "SQL server name, without the domain suffix")
	f.StringVar(&c.database, "database", "", "SQL database name")
}

// Init implements cmd.Command.
func (c *createSQLLinkedServiceCommand) Init(args []string) (err error) {
	c.name, err = cmd.ZeroOrOneArgs(args)
	return errors.Trace(err)
}

// Run implements cmd.Command.
func (c *createSQLLinkedServiceCommand) Run(ctx *cmd.Context) error {
	c.Override(config.SQLLinkedServiceKey, c.name)
	c.Override(config.SQLServerKey, c.server)
	c.Override(config.SQLDatabaseKey, c.database)

	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	msg, err := createSQLLinkedService(ctx, api, cfg)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, msg)
	return nil
}
