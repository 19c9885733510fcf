// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/config"
	"github.com/canonical/adfctl/internal/datafactory"
)

const provisionDoc = `
Provision the configured data factory end to end:

  resource-group            ensure the resource group (with --create-resource-group)
  factory                   create the data factory
  data-lake-linked-service  Blob Storage linked service for STORAGE_ACCOUNT_NAME
  sql-linked-service        SQL Database linked service (unless --no-sql)
  blob-linked-service       Blob Storage linked service for BLOB_STORAGE_ACCOUNT_NAME
                            (with --with-pipeline)
  copy-pipeline             the blob to data lake copy pipeline (with --with-pipeline)
  pipeline-run              a run of the pipeline (with --run)

Every step is attempted. A failed step is reported on stderr and the
steps that depend on it are skipped; the command fails if any step failed.
With --stop-on-error provisioning stops at the first failure.
`

// Step names.
const (
	stepResourceGroup   = "resource-group"
	stepFactory         = "factory"
	stepDataLakeService = "data-lake-linked-service"
	stepSQLService      = "sql-linked-service"
	stepBlobService     = "blob-linked-service"
	stepCopyPipeline    = "copy-pipeline"
	stepPipelineRun     = "pipeline-run"
)

// NewProvisionCommand returns a command that runs every provisioning step.
func NewProvisionCommand() cmd.Command {
	return &provisionCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type provisionCommand struct {
	adfcmd.CommandBase

	createResourceGroup bool
	withPipeline        bool
	run                 bool
	wait                bool
	noSQL               bool
	stopOnError         bool
	summary             bool
	timeout             time.Duration
}

// Info implements cmd.Command.
func (c *provisionCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "provision",
		Purpose: "Create the data factory and its linked services.",
		Doc:     provisionDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *provisionCommand) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.BoolVar(&c.createResourceGroup, "create-resource-group", false, "Create the resource group if it does not exist")
	f.BoolVar(&c.withPipeline, "with-pipeline", false, "Also create the blob linked service and copy pipeline")
	f.BoolVar(&c.run, "run", false, "Trigger a pipeline run at the end")
	f.BoolVar(&c.wait, "wait", false, "Wait for the pipeline run to finish")
	f.BoolVar(&c.noSQL, "no-sql", false, "Do not create the SQL Database linked service")
	f.BoolVar(&c.stopOnError, "stop-on-error", false, "Stop at the first failed step")
	f.BoolVar(&c.summary, "summary", false, "Print a summary of every step at the end")
	f.DurationVar(&c.timeout, "timeout", 0, "Maximum time to wait for the pipeline run, 0 for no limit")
}

// Init implements cmd.Command.
func (c *provisionCommand) Init(args []string) error {
	if c.wait && !c.run {
		return errors.New("--wait requires --run")
	}
	return c.CommandBase.Init(args)
}

// step is one unit of provisioning. run returns the message printed
// on success.
type step struct {
	name      string
	dependsOn []string
	run       func(ctx context.Context) (string, error)
}

// stepResult records how a step ended.
type stepResult struct {
	Step   string
	Status string
	Detail string
}

// Run implements cmd.Command.
func (c *provisionCommand) Run(ctx *cmd.Context) error {
	if c.createResourceGroup {
		c.Override(config.CreateResourceGroupKey, true)
	}
	cfg, api, err := c.DataFactory(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	results := runSteps(ctx, c.steps(ctx, cfg, api), c.stopOnError)
	if c.summary {
		printSummary(ctx, results)
	}

	var failed int
	for _, r := range results {
		if r.Status == adfcmd.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d provisioning steps failed", failed, len(results))
	}
	return nil
}

func (c *provisionCommand) steps(ctx *cmd.Context, cfg *config.Config, api adfcmd.DataFactoryAPI) []step {
	apis := c.APIFactory()
	var steps []step
	var factoryDeps []string
	if cfg.CreateResourceGroup() {
		steps = append(steps, step{
			name: stepResourceGroup,
			run: func(ctx context.Context) (string, error) {
				return ensureResourceGroup(ctx, apis, cfg)
			},
		})
		factoryDeps = []string{stepResourceGroup}
	}
	steps = append(steps, step{
		name:      stepFactory,
		dependsOn: factoryDeps,
		run: func(ctx context.Context) (string, error) {
			return createFactory(ctx, api, cfg, nil)
		},
	}, step{
		name:      stepDataLakeService,
		dependsOn: []string{stepFactory},
		run: func(ctx context.Context) (string, error) {
			return createStorageLinkedService(ctx, apis, api, cfg, dataLakeLinkedService(cfg))
		},
	})
	if !c.noSQL {
		steps = append(steps, step{
			name:      stepSQLService,
			dependsOn: []string{stepFactory},
			run: func(ctx context.Context) (string, error) {
				return createSQLLinkedService(ctx, api, cfg)
			},
		})
	}
	runDeps := []string{stepFactory}
	if c.withPipeline {
		steps = append(steps, step{
			name:      stepBlobService,
			dependsOn: []string{stepFactory},
			run: func(ctx context.Context) (string, error) {
				return createStorageLinkedService(ctx, apis, api, cfg, blobLinkedService(cfg))
			},
		}, step{
			name:      stepCopyPipeline,
			dependsOn: []string{stepBlobService, stepDataLakeService},
			run: func(ctx context.Context) (string, error) {
				return createCopyPipeline(ctx, api, cfg)
			},
		})
		runDeps = []string{stepCopyPipeline}
	}
	if c.run {
		steps = append(steps, step{
			name:      stepPipelineRun,
			dependsOn: runDeps,
			run: func(stepCtx context.Context) (string, error) {
				runID, msg, err := runPipeline(stepCtx, api, cfg, nil)
				if err != nil || !c.wait {
					return msg, errors.Trace(err)
				}
				fmt.Fprintln(ctx.Stdout, msg)
				err = waitForRun(ctx, api, runID, datafactory.WaitParams{Timeout: c.timeout})
				return "", errors.Trace(err)
			},
		})
	}
	return steps
}

// runSteps runs the steps in order. A step whose dependency did not
// succeed is skipped. Failures are written to stderr as
// "ERROR <step>: <message>" and successes to stdout.
func runSteps(ctx *cmd.Context, steps []step, stopOnError bool) []stepResult {
	succeeded := set.NewStrings()
	results := make([]stepResult, 0, len(steps))
	stopped := false
	for _, s := range steps {
		if stopped {
			results = append(results, stepResult{Step: s.name, Status: adfcmd.StatusSkipped, Detail: "stopped"})
			continue
		}
		if missing := unmetDependency(s, succeeded); missing != "" {
			logger.Debugf("skipping %s: %s did not succeed", s.name, missing)
			ctx.Infof("Skipping %s: %s did not succeed.", s.name, missing)
			results = append(results, stepResult{Step: s.name, Status: adfcmd.StatusSkipped, Detail: "needs " + missing})
			continue
		}
		msg, err := s.run(ctx)
		if err != nil {
			detail := adfcmd.ErrorMessage(err)
			logger.Debugf("step %s failed: %s", s.name, errors.Details(err))
			ctx.Errorf("%s: %s", s.name, detail)
			results = append(results, stepResult{Step: s.name, Status: adfcmd.StatusFailed, Detail: detail})
			stopped = stopOnError
			continue
		}
		if msg != "" {
			fmt.Fprintln(ctx.Stdout, msg)
		}
		succeeded.Add(s.name)
		results = append(results, stepResult{Step: s.name, Status: adfcmd.StatusOK})
	}
	return results
}

func unmetDependency(s step, succeeded set.Strings) string {
	for _, dep := range s.dependsOn {
		if !succeeded.Contains(dep) {
			return dep
		}
	}
	return ""
}

func printSummary(ctx *cmd.Context, results []stepResult) {
	w := adfcmd.NewStatusWriter(ctx.Stdout)
	fmt.Fprintln(w)
	for _, r := range results {
		if r.Detail == "" {
			adfcmd.PrintStatus(w, r.Status, "%s", r.Step)
			continue
		}
		adfcmd.PrintStatus(w, r.Status, "%s (%s)", r.Step, r.Detail)
	}
}
