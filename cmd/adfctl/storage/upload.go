// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package storage holds the commands that work with Blob Storage
// containers directly.
package storage

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/blobstore"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

var logger = loggo.GetLogger("adfctl.cmd.storage")

const uploadDoc = `
Upload local files to a Blob Storage container, creating the container
if it does not exist. Each file is stored under its base name, prefixed
with --prefix, and replaces any blob of the same name.

The storage account is taken from STORAGE_ACCOUNT_URL, or derived from
BLOB_STORAGE_ACCOUNT_NAME or STORAGE_ACCOUNT_NAME. The matching account
key is used if configured, otherwise the Azure AD credential.

Every file is attempted; the command fails if any upload failed.
`

const uploadExamples = `
    adfctl upload sample1.txt sample2.txt sample3.txt
    adfctl upload --container landing --prefix 2024/05/ *.csv
`

// NewUploadCommand returns a command that uploads files to a container.
func NewUploadCommand() cmd.Command {
	return &uploadCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type uploadCommand struct {
	adfcmd.CommandBase

	container   string
	prefix      string
	parallelism int
	files       []string
}

// Info implements cmd.Command.
func (c *uploadCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "upload",
		Args:     "<file> ...",
		Purpose:  "Upload files to Blob Storage.",
		Doc:      uploadDoc,
		Examples: uploadExamples,
	}
}

// SetFlags implements cmd.Command.
func (c *uploadCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.container, "container", "", "Container to upload to (default UPLOAD_CONTAINER)")
	f.StringVar(&c.prefix, "prefix", "", "Prefix added to every blob name")
	f.IntVar(&c.parallelism, "parallel", 1, "Number of files to upload at once")
}

// Init implements cmd.Command.
func (c *uploadCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no files specified")
	}
	if c.parallelism < 1 {
		return errors.NotValidf("--parallel %d", c.parallelism)
	}
	c.files = args
	return nil
}

// Run implements cmd.Command.
func (c *uploadCommand) Run(ctx *cmd.Context) error {
	c.Override(config.UploadContainerKey, c.container)
	cfg, err := c.LoadConfig(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if err := cfg.Require(config.UploadContainerKey); err != nil {
		return errors.Trace(err)
	}
	api, err := c.APIFactory().Blobs(cfg, adfcmd.BlobParams{
		Container:   cfg.UploadContainer(),
		Prefix:      c.prefix,
		Parallelism: c.parallelism,
	})
	if err != nil {
		return errors.Trace(err)
	}

	created, err := api.EnsureContainer(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if created {
		fmt.Fprintf(ctx.Stdout, "Container %q created successfully.\n", api.Container())
	} else {
		fmt.Fprintf(ctx.Stdout, "Container %q already exists.\n", api.Container())
	}

	paths := make([]string, len(c.files))
	names := make(map[string]string, len(c.files))
	for i, f := range c.files {
		paths[i] = ctx.AbsPath(f)
		names[paths[i]] = f
	}
	var total uint64
	results, err := api.UploadFiles(ctx, paths, func(r blobstore.UploadResult) {
		if r.Err != nil {
			ctx.Errorf("uploading %q: %s", names[r.Path], adfcmd.ErrorMessage(r.Err))
			return
		}
		total += uint64(r.Size)
		fmt.Fprintf(ctx.Stdout, "File %q uploaded to blob %q successfully.\n", names[r.Path], r.Blob)
	})
	if err != nil {
		return errors.Trace(err)
	}
	ctx.Verbosef("Uploaded %d files (%s) to container %q.", len(results), humanize.Bytes(total), api.Container())
	logger.Debugf("uploaded %d files to %q", len(results), api.Container())
	return nil
}
