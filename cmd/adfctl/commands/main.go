// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package commands assembles the adfctl super command.
package commands

import (
	"fmt"
	"os"

	"github.com/juju/version/v2"

	"github.com/canonical/adfctl/cmd/adfctl/factory"
	"github.com/canonical/adfctl/cmd/adfctl/settings"
	"github.com/canonical/adfctl/cmd/adfctl/storage"
	"github.com/canonical/adfctl/internal/cmd"
)

// LoggingConfigEnvKey names the environment variable holding the default
// logging configuration, e.g. "adfctl.datafactory=DEBUG".
const LoggingConfigEnvKey = "ADFCTL_LOGGING_CONFIG"

// Version is the adfctl version. Release builds override it with
// -ldflags "-X github.com/canonical/adfctl/cmd/adfctl/commands.Version=...".
var Version = "0.1.0"

var adfctlDoc = `
adfctl provisions Azure Data Factory resources and uploads files to
Azure Blob Storage.

Settings are read from a .env file in the current directory, the
environment and an optional YAML file given with --config. Run
"adfctl show-config --all" to see every setting and its source.
`

const adfctlExamples = `
    adfctl provision --create-resource-group --with-pipeline --run --wait
    adfctl upload --container input data/*.csv
    adfctl run-pipeline CopyBlobToDataLake --wait
`

// Main registers the adfctl commands and runs the one named in args, which
// includes the program name. It returns the process exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(NewAdfctlCommand(ctx), ctx, args[1:])
}

// NewAdfctlCommand returns the adfctl super command with every subcommand
// registered.
func NewAdfctlCommand(ctx *cmd.Context) *cmd.SuperCommand {
	super := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:     "adfctl",
		Purpose:  "Provision Azure Data Factory and upload data to Blob Storage.",
		Doc:      adfctlDoc,
		Examples: adfctlExamples,
		Log: &cmd.Log{
			DefaultConfig: ctx.Getenv(LoggingConfigEnvKey),
		},
		Version: currentVersion().String(),
	})
	registerCommands(super)
	return super
}

func currentVersion() version.Number {
	v, err := version.Parse(Version)
	if err != nil {
		return version.Zero
	}
	return v
}

type commandRegistry interface {
	Register(cmd.Command)
}

func registerCommands(r commandRegistry) {
	// Data Factory provisioning.
	r.Register(factory.NewProvisionCommand())
	r.Register(factory.NewCreateFactoryCommand())
	r.Register(factory.NewShowFactoryCommand())
	r.Register(factory.NewCreateBlobLinkedServiceCommand())
	r.Register(factory.NewCreateSQLLinkedServiceCommand())
	r.Register(factory.NewCreateCopyPipelineCommand())

	// Pipeline runs.
	r.Register(factory.NewRunPipelineCommand())
	r.Register(factory.NewShowRunCommand())
	r.Register(factory.NewCancelRunCommand())

	// Blob Storage.
	r.Register(storage.NewUploadCommand())
	r.Register(storage.NewListBlobsCommand())

	// Settings.
	r.Register(settings.NewShowConfigCommand())
	r.Register(settings.NewVerifyCredentialsCommand())
}
