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

const createCopyPipelineDoc = `
Create a pipeline that copies one blob into a Data Lake Store folder.

Two datasets are created first: BlobStorageDataset, reading BLOB_PATH in
BLOB_CONTAINER through the blob linked service, and DataLakeStorageDataset,
writing to DATA_LAKE_FILE_SYSTEM/DATA_LAKE_DIRECTORY through the data lake
linked service. The pipeline has a single copy activity between them. Both
linked services must already exist.
`

// NewCreateCopyPipelineCommand returns a command that creates the blob to
// data lake copy pipeline.
func NewCreateCopyPipelineCommand() cmd.Command {
	return &createCopyPipelineCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type createCopyPipelineCommand struct {
	adfcmd.CommandBase

	name      string
	container string
	blobPath  string
}

// Info implements cmd.Command.
func (c *createCopyPipelineCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "create-copy-pipeline",
		Args:    "[<name>]",
		Purpose: "Create a pipeline copying a blob to Data Lake Storage.",
		Doc:     createCopyPipelineDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *createCopyPipelineCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.container, "container", "", "Container holding the source blob")
	f.StringVar(&c.blobPath, "blob-path", "", "Path of the source blob within the container")
}

// Init implements cmd.Command.
func (c *createCopyPipelineCommand) Init(args []string) (err error) {
	c.name, err = cmd.ZeroOrOneArgs(args)
	return errors.Trace(err)
}

// Run implements cmd.Command.
func (c *createCopyPipelineCommand) Run(ctx *cmd.Context) error {
	c.Override(config.PipelineKey, c.name)
	c.Override(config.BlobContainerKey, c.container)
	c.Override(config.BlobPathKey, c.blobPath)

	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	msg, err := createCopyPipeline(ctx, api, cfg)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, msg)
	return nil
}
