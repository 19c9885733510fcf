// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/utils/v4/keyvalues"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
	"github.com/canonical/adfctl/internal/datafactory"
)

const runPipelineDoc = `
Trigger a run of a pipeline and print its run ID.

The pipeline defaults to PIPELINE_NAME. Pipeline parameters may follow
the name as key=value pairs. With --wait the command polls the run until
it finishes and fails unless the run succeeded.
`

const runPipelineExamples = `
    adfctl run-pipeline
    adfctl run-pipeline BlobToDataLakePipeline date=2024-05-01
    adfctl run-pipeline --wait --timeout 30m
`

// NewRunPipelineCommand returns a command that triggers a pipeline run.
func NewRunPipelineCommand() cmd.Command {
	return &runPipelineCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type runPipelineCommand struct {
	adfcmd.CommandBase

	name         string
	params       map[string]any
	wait         bool
	timeout      time.Duration
	pollInterval time.Duration
}

// Info implements cmd.Command.
func (c *runPipelineCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:     "run-pipeline",
		Args:     "[<name>] [<key>=<value> ...]",
		Purpose:  "Trigger a pipeline run.",
		Doc:      runPipelineDoc,
		Examples: runPipelineExamples,
	}
}

// SetFlags implements cmd.Command.
func (c *runPipelineCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.BoolVar(&c.wait, "wait", false, "Wait for the run to finish")
	f.DurationVar(&c.timeout, "timeout", 0, "Maximum time to wait, 0 for no limit")
	f.DurationVar(&c.pollInterval, "poll-interval", 5*time.Second, "Initial delay between status checks")
}

// Init implements cmd.Command.
func (c *runPipelineCommand) Init(args []string) error {
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		c.name, args = args[0], args[1:]
	}
	if len(args) > 0 {
		kv, err := keyvalues.Parse(args, true)
		if err != nil {
			return errors.Annotate(err, "parsing pipeline parameters")
		}
		c.params = make(map[string]any, len(kv))
		for k, v := range kv {
			c.params[k] = v
		}
	}
	if c.timeout < 0 {
		return errors.NotValidf("negative timeout %v", c.timeout)
	}
	if c.pollInterval <= 0 {
		return errors.NotValidf("poll interval %v", c.pollInterval)
	}
	return nil
}

// Run implements cmd.Command.
func (c *runPipelineCommand) Run(ctx *cmd.Context) error {
	c.Override(config.PipelineKey, c.name)
	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	runID, msg, err := runPipeline(ctx, api, cfg, c.params)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintln(ctx.Stdout, msg)
	if !c.wait {
		return nil
	}
	return errors.Trace(waitForRun(ctx, api, runID, datafactory.WaitParams{
		Delay:   c.pollInterval,
		Timeout: c.timeout,
	}))
}

// waitForRun waits for the run to finish, reporting progress on stderr
// and the outcome on stdout.
func waitForRun(ctx *cmd.Context, api adfcmd.DataFactoryAPI, runID string, p datafactory.WaitParams) error {
	last := ""
	p.Notify = func(status datafactory.PipelineRunStatus) {
		if status.Status != last {
			ctx.Infof("Pipeline run %s is %s", runID, status.Status)
			last = status.Status
		}
	}
	status, err := api.WaitForRun(ctx, runID, p)
	if err != nil && !datafactory.IsRunFailed(err) {
		return errors.Trace(err)
	}
	fmt.Fprintf(ctx.Stdout, "Pipeline run %s %s after %v.\n", runID, status.Status, status.Duration)
	return errors.Trace(err)
}

const showRunDoc = `
Show the status of a pipeline run.
`

// NewShowRunCommand returns a command that shows a pipeline run.
func NewShowRunCommand() cmd.Command {
	return &showRunCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type showRunCommand struct {
	adfcmd.CommandBase

	out   cmd.Output
	runID string
}

// Info implements cmd.Command.
func (c *showRunCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "show-run",
		Args:    "<run-id>",
		Purpose: "Show a pipeline run.",
		Doc:     showRunDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *showRunCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", map[string]cmd.Formatter{
		"tabular": formatRunTabular,
		"yaml":    cmd.FormatYaml,
		"json":    cmd.FormatJson,
	})
}

// Init implements cmd.Command.
func (c *showRunCommand) Init(args []string) error {
	if len(args) < 1 {
		return errors.New("missing run ID")
	}
	c.runID, args = args[0], args[1:]
	return c.CommandBase.Init(args)
}

// Run implements cmd.Command.
func (c *showRunCommand) Run(ctx *cmd.Context) error {
	_, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	status, err := api.RunStatus(ctx, c.runID)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.out.Write(ctx, status))
}

func formatRunTabular(writer io.Writer, value any) error {
	status, ok := value.(datafactory.PipelineRunStatus)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", status, value)
	}
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true

	table.AddRow("Run ID:", status.RunID)
	table.AddRow("Pipeline:", status.Pipeline)
	table.AddRow("Status:", status.Status)
	if status.Start != nil {
		table.AddRow("Started:", status.Start.Format(time.RFC3339))
	}
	if status.End != nil {
		table.AddRow("Finished:", status.End.Format(time.RFC3339))
	}
	if status.Duration > 0 {
		table.AddRow("Duration:", status.Duration.String())
	}
	if status.Message != "" {
		table.AddRow("Message:", status.Message)
	}
	fmt.Fprintln(writer, table)
	return nil
}

const cancelRunDoc = `
Cancel a pipeline run, including any runs it started.
`

// NewCancelRunCommand returns a command that cancels a pipeline run.
func NewCancelRunCommand() cmd.Command {
	return &cancelRunCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type cancelRunCommand struct {
	adfcmd.CommandBase

	runID string
}

// Info implements cmd.Command.
func (c *cancelRunCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "cancel-run",
		Args:    "<run-id>",
		Purpose: "Cancel a pipeline run.",
		Doc:     cancelRunDoc,
	}
}

// Init implements cmd.Command.
func (c *cancelRunCommand) Init(args []string) error {
	if len(args) < 1 {
		return errors.New("missing run ID")
	}
	c.runID, args = args[0], args[1:]
	return c.CommandBase.Init(args)
}

// Run implements cmd.Command.
func (c *cancelRunCommand) Run(ctx *cmd.Context) error {
	_, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if err := api.CancelRun(ctx, c.runID); err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintf(ctx.Stdout, "Pipeline run %s cancelled.\n", c.runID)
	return nil
}
