// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/naturalsort"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/blobstore"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
)

const listBlobsDoc = `
List the blobs in a container, optionally only those whose names start
with --prefix. The container defaults to UPLOAD_CONTAINER.
`

// NewListBlobsCommand returns a command that lists the blobs in a
// container.
func NewListBlobsCommand() cmd.Command {
	return &listBlobsCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type listBlobsCommand struct {
	adfcmd.CommandBase

	out       cmd.Output
	container string
	prefix    string
}

// Info implements cmd.Command.
func (c *listBlobsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list-blobs",
		Purpose: "List the blobs in a container.",
		Doc:     listBlobsDoc,
		Aliases: []string{"blobs"},
	}
}

// SetFlags implements cmd.Command.
func (c *listBlobsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.container, "container", "", "Container to list (default UPLOAD_CONTAINER)")
	f.StringVar(&c.prefix, "prefix", "", "Only list blobs whose names start with this prefix")
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatBlobsTabular,
		"yaml":    cmd.FormatYaml,
		"json":    cmd.FormatJson,
	})
}

// Run implements cmd.Command.
func (c *listBlobsCommand) Run(ctx *cmd.Context) error {
	c.Override(config.UploadContainerKey, c.container)
	cfg, err := c.LoadConfig(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if err := cfg.Require(config.UploadContainerKey); err != nil {
		return errors.Trace(err)
	}
	api, err := c.APIFactory().Blobs(cfg, adfcmd.BlobParams{Container: cfg.UploadContainer()})
	if err != nil {
		return errors.Trace(err)
	}
	blobs, err := api.ListBlobs(ctx, c.prefix)
	if err != nil {
		return errors.Trace(err)
	}
	if len(blobs) == 0 && c.out.Name() == "tabular" {
		ctx.Infof("No blobs in container %q.", api.Container())
		return nil
	}
	return errors.Trace(c.out.Write(ctx, sortBlobs(blobs)))
}

// sortBlobs orders blobs naturally by name, so that "part-2" comes
// before "part-10".
func sortBlobs(blobs []blobstore.BlobInfo) []blobstore.BlobInfo {
	byName := make(map[string]blobstore.BlobInfo, len(blobs))
	names := make([]string, len(blobs))
	for i, b := range blobs {
		byName[b.Name] = b
		names[i] = b.Name
	}
	naturalsort.Sort(names)
	sorted := make([]blobstore.BlobInfo, len(names))
	for i, name := range names {
		sorted[i] = byName[name]
	}
	return sorted
}

func formatBlobsTabular(writer io.Writer, value any) error {
	blobs, ok := value.([]blobstore.BlobInfo)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", blobs, value)
	}
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.RightAlign(1)

	table.AddRow("Name", "Size", "Content type", "Last modified")
	for _, b := range blobs {
		modified := ""
		if !b.LastModified.IsZero() {
			modified = b.LastModified.UTC().Format(time.RFC3339)
		}
		table.AddRow(b.Name, humanize.Bytes(uint64(b.Size)), b.ContentType, modified)
	}
	fmt.Fprintln(writer, table)
	return nil
}
