// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package datafactory

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/datafactory/armdatafactory"
	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/juju/retry"

	"github.com/canonical/adfctl/internal/azure/errorutils"
)

// Pipeline run statuses reported by Data Factory.
const (
	RunStatusQueued     = "Queued"
	RunStatusInProgress = "InProgress"
	RunStatusSucceeded  = "Succeeded"
	RunStatusFailed     = "Failed"
	RunStatusCanceling  = "Canceling"
	RunStatusCancelled  = "Cancelled"
)

// ErrRunFailed is the type of error returned when a pipeline run finishes
// without succeeding.
const ErrRunFailed = errors.ConstError("pipeline run did not succeed")

// IsRunFailed reports whether err is the result of a pipeline run that
// finished without succeeding.
func IsRunFailed(err error) bool {
	return errors.Is(err, ErrRunFailed)
}

// PipelineRunStatus describes a pipeline run.
type PipelineRunStatus struct {
	RunID    string        `json:"run-id" yaml:"run-id"`
	Pipeline string        `json:"pipeline" yaml:"pipeline"`
	Status   string        `json:"status" yaml:"status"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Start    *time.Time    `json:"start,omitempty" yaml:"start,omitempty"`
	End      *time.Time    `json:"end,omitempty" yaml:"end,omitempty"`
	Duration time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Terminal reports whether the run has finished.
func (s PipelineRunStatus) Terminal() bool {
	switch s.Status {
	case RunStatusSucceeded, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// RunPipeline starts a run of the named pipeline with the given
// parameters and returns the run ID.
func (s *Service) RunPipeline(ctx context.Context, name string, parameters map[string]any) (string, error) {
	if name == "" {
		return "", errors.NotValidf("empty pipeline name")
	}
	var options *armdatafactory.PipelinesClientCreateRunOptions
	if len(parameters) > 0 {
		options = &armdatafactory.PipelinesClientCreateRunOptions{Parameters: parameters}
	}
	var resp armdatafactory.PipelinesClientCreateRunResponse
	err := s.caller.Call(ctx, func() error {
		var err error
		resp, err = s.cfg.Pipelines.CreateRun(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, name, options)
		return err
	})
	if err != nil {
		if errorutils.IsNotFoundError(err) {
			return "", errors.NotFoundf("pipeline %q in data factory %q", name, s.cfg.FactoryName)
		}
		return "", s.annotate(err, "running pipeline %q", name)
	}
	runID := toValue(resp.RunID)
	if runID == "" {
		return "", errors.Errorf("running pipeline %q: no run ID returned", name)
	}
	logger.Infof("started run %s of pipeline %q", runID, name)
	return runID, nil
}

func validateRunID(runID string) error {
	if _, err := uuid.Parse(runID); err != nil {
		return errors.NotValidf("run ID %q", runID)
	}
	return nil
}

// RunStatus returns the status of a pipeline run.
func (s *Service) RunStatus(ctx context.Context, runID string) (PipelineRunStatus, error) {
	if err := validateRunID(runID); err != nil {
		return PipelineRunStatus{}, errors.Trace(err)
	}
	var resp armdatafactory.PipelineRunsClientGetResponse
	err := s.caller.Call(ctx, func() error {
		var err error
		resp, err = s.cfg.PipelineRuns.Get(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, runID, nil)
		return err
	})
	if err != nil {
		if errorutils.IsNotFoundError(err) {
			return PipelineRunStatus{}, errors.NotFoundf("pipeline run %q", runID)
		}
		return PipelineRunStatus{}, s.annotate(err, "getting pipeline run %q", runID)
	}
	return runStatus(runID, resp.PipelineRun), nil
}

func runStatus(runID string, run armdatafactory.PipelineRun) PipelineRunStatus {
	status := PipelineRunStatus{
		RunID:    toValue(run.RunID),
		Pipeline: toValue(run.PipelineName),
		Status:   toValue(run.Status),
		Message:  toValue(run.Message),
		Start:    run.RunStart,
		End:      run.RunEnd,
	}
	if status.RunID == "" {
		status.RunID = runID
	}
	if run.DurationInMs != nil {
		status.Duration = time.Duration(*run.DurationInMs) * time.Millisecond
	}
	return status
}

// CancelRun cancels a pipeline run, including any child pipelines it
// started.
func (s *Service) CancelRun(ctx context.Context, runID string) error {
	if err := validateRunID(runID); err != nil {
		return errors.Trace(err)
	}
	err := s.caller.Call(ctx, func() error {
		_, err := s.cfg.PipelineRuns.Cancel(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, runID,
			&armdatafactory.PipelineRunsClientCancelOptions{IsRecursive: to.Ptr(true)})
		return err
	})
	if err != nil {
		if errorutils.IsNotFoundError(err) {
			return errors.NotFoundf("pipeline run %q", runID)
		}
		return s.annotate(err, "cancelling pipeline run %q", runID)
	}
	return nil
}

// WaitParams controls how WaitForRun polls.
type WaitParams struct {
	// Delay is the initial delay between polls, doubled after each
	// poll up to MaxDelay.
	Delay    time.Duration
	MaxDelay time.Duration

	// Timeout bounds the total wait. Zero means no limit.
	Timeout time.Duration

	// Notify, if set, is called with every non-terminal status.
	Notify func(PipelineRunStatus)
}

const (
	defaultPollDelay    = 5 * time.Second
	defaultMaxPollDelay = 1 * time.Minute
)

var errRunNotFinished = errors.ConstError("pipeline run not finished")

// WaitForRun polls the run until it finishes. If the run does not
// succeed, its final status is returned together with an error
// satisfying IsRunFailed.
func (s *Service) WaitForRun(ctx context.Context, runID string, p WaitParams) (PipelineRunStatus, error) {
	if err := validateRunID(runID); err != nil {
		return PipelineRunStatus{}, errors.Trace(err)
	}
	if p.Delay <= 0 {
		p.Delay = defaultPollDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultMaxPollDelay
	}

	var status PipelineRunStatus
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			var err error
			status, err = s.RunStatus(ctx, runID)
			if err != nil {
				return errors.Trace(err)
			}
			if !status.Terminal() {
				if p.Notify != nil {
					p.Notify(status)
				}
				return errRunNotFinished
			}
			return nil
		},
		IsFatalError: func(err error) bool {
			return !errors.Is(err, errRunNotFinished)
		},
		NotifyFunc: func(err error, attempt int) {
			logger.Tracef("run %s poll %d: %s", runID, attempt, status.Status)
		},
		Attempts:    -1,
		Delay:       p.Delay,
		MaxDelay:    p.MaxDelay,
		MaxDuration: p.Timeout,
		BackoffFunc: retry.DoubleDelay,
		Clock:       s.cfg.Clock,
		Stop:        ctx.Done(),
	})
	switch {
	case retry.IsDurationExceeded(err):
		return status, errors.Timeoutf("waiting for pipeline run %q", runID)
	case retry.IsRetryStopped(err):
		return status, errors.Annotatef(ctx.Err(), "waiting for pipeline run %q", runID)
	case err != nil:
		return status, errors.Trace(err)
	}
	if status.Status != RunStatusSucceeded {
		return status, errors.WithType(
			errors.Errorf("pipeline run %q %s: %s", runID, status.Status, status.Message), ErrRunFailed)
	}
	return status, nil
}
