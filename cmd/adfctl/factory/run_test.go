// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory_test

import (
	"strings"
	"time"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/cmd/adfctl/factory"
	"github.com/canonical/adfctl/internal/cmd/cmdtesting"
	"github.com/canonical/adfctl/internal/datafactory"
)

type runSuite struct {
	baseSuite
}

var _ = gc.Suite(&runSuite{})

func (s *runSuite) TestRunPipeline(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", nil).Return(runID, nil)

	ctx, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIsNil)
	s.assertStdout(c, ctx, "Pipeline run triggered successfully with run ID: "+runID+"\n")
}

func (s *runSuite) TestRunPipelineNameAndParameters(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "orders", map[string]any{
		"date":   "2024-05-01",
		"region": "emea",
	}).Return(runID, nil)

	_, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis), "orders", "date=2024-05-01", "region=emea")
	c.Assert(err, jc.ErrorIsNil)
}

func (s *runSuite) TestRunPipelineParametersOnly(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", map[string]any{"date": "today"}).Return(runID, nil)

	_, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis), "date=today")
	c.Assert(err, jc.ErrorIsNil)
}

func (s *runSuite) TestRunPipelineInvalidName(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()

	_, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis), "daily/orders")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	c.Assert(err, gc.ErrorMatches, `pipeline: name "daily/orders" \(contains one of .*\) not valid`)
}

func (s *runSuite) TestRunPipelineInitErrors(c *gc.C) {
	err := cmdtesting.InitCommand(factory.NewRunPipelineCommandForTest(nil), []string{"p", "date=1", "date=2"})
	c.Check(err, gc.ErrorMatches, `parsing pipeline parameters: .*date.*`)

	err = cmdtesting.InitCommand(factory.NewRunPipelineCommandForTest(nil), []string{"--poll-interval", "0s"})
	c.Check(err, jc.ErrorIs, errors.NotValid)
}

func (s *runSuite) TestRunPipelineWait(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", nil).Return(runID, nil)
	s.api.EXPECT().WaitForRun(gomock.Any(), runID, gomock.Any()).DoAndReturn(
		func(_ any, _ string, p datafactory.WaitParams) (datafactory.PipelineRunStatus, error) {
			c.Check(p.Delay, gc.Equals, 10*time.Second)
			c.Check(p.Timeout, gc.Equals, 5*time.Minute)
			p.Notify(datafactory.PipelineRunStatus{RunID: runID, Status: datafactory.RunStatusQueued})
			p.Notify(datafactory.PipelineRunStatus{RunID: runID, Status: datafactory.RunStatusInProgress})
			p.Notify(datafactory.PipelineRunStatus{RunID: runID, Status: datafactory.RunStatusInProgress})
			return datafactory.PipelineRunStatus{
				RunID:    runID,
				Status:   datafactory.RunStatusSucceeded,
				Duration: 90 * time.Second,
			}, nil
		})

	ctx, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis),
		"--wait", "--poll-interval", "10s", "--timeout", "5m")
	c.Assert(err, jc.ErrorIsNil)
	s.assertStdout(c, ctx, ""+
		"Pipeline run triggered successfully with run ID: "+runID+"\n"+
		"Pipeline run "+runID+" Succeeded after 1m30s.\n")
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, ""+
		"Pipeline run "+runID+" is Queued\n"+
		"Pipeline run "+runID+" is InProgress\n")
}

func (s *runSuite) TestRunPipelineWaitFailed(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", nil).Return(runID, nil)
	s.api.EXPECT().WaitForRun(gomock.Any(), runID, gomock.Any()).Return(
		datafactory.PipelineRunStatus{RunID: runID, Status: datafactory.RunStatusFailed, Duration: time.Minute},
		errors.WithType(errors.Errorf("pipeline run %q Failed: copy failed", runID), datafactory.ErrRunFailed))

	ctx, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis), "--wait")
	c.Assert(err, jc.ErrorIs, datafactory.ErrRunFailed)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "Pipeline run "+runID+" Failed after 1m0s.\n")
}

func (s *runSuite) TestRunPipelineWaitTimeout(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", nil).Return(runID, nil)
	s.api.EXPECT().WaitForRun(gomock.Any(), runID, gomock.Any()).Return(
		datafactory.PipelineRunStatus{}, errors.Timeoutf("waiting for pipeline run %q", runID))

	ctx, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis), "--wait", "--timeout", "1m")
	c.Assert(err, jc.ErrorIs, errors.Timeout)
	s.assertStdout(c, ctx, "Pipeline run triggered successfully with run ID: "+runID+"\n")
}

func (s *runSuite) TestRunPipelineNotFound(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunPipeline(gomock.Any(), "BlobToDataLakePipeline", nil).Return("", errors.NotFoundf("pipeline %q", "BlobToDataLakePipeline"))

	ctx, err := s.run(c, factory.NewRunPipelineCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIs, errors.NotFound)
	s.assertStdout(c, ctx, "")
}

// normalise returns the non-empty lines of tabular output with runs of
// whitespace collapsed.
func normalise(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return lines
}

func (s *runSuite) runStatus() datafactory.PipelineRunStatus {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Minute)
	return datafactory.PipelineRunStatus{
		RunID:    runID,
		Pipeline: "BlobToDataLakePipeline",
		Status:   datafactory.RunStatusSucceeded,
		Start:    &start,
		End:      &end,
		Duration: 2 * time.Minute,
	}
}

func (s *runSuite) TestShowRunTabular(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunStatus(gomock.Any(), runID).Return(s.runStatus(), nil)

	ctx, err := s.run(c, factory.NewShowRunCommandForTest(s.apis), runID)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(normalise(cmdtesting.Stdout(ctx)), jc.DeepEquals, []string{
		"Run ID: " + runID,
		"Pipeline: BlobToDataLakePipeline",
		"Status: Succeeded",
		"Started: 2024-05-01T10:00:00Z",
		"Finished: 2024-05-01T10:02:00Z",
		"Duration: 2m0s",
	})
}

func (s *runSuite) TestShowRunYAML(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	status := s.runStatus()
	status.Start, status.End = nil, nil
	s.api.EXPECT().RunStatus(gomock.Any(), runID).Return(status, nil)

	ctx, err := s.run(c, factory.NewShowRunCommandForTest(s.apis), runID, "--format", "yaml")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, ""+
		"run-id: "+runID+"\n"+
		"pipeline: BlobToDataLakePipeline\n"+
		"status: Succeeded\n"+
		"duration: 2m0s\n")
}

func (s *runSuite) TestShowRunJSON(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunStatus(gomock.Any(), runID).Return(datafactory.PipelineRunStatus{
		RunID:    runID,
		Pipeline: "p",
		Status:   datafactory.RunStatusInProgress,
	}, nil)

	ctx, err := s.run(c, factory.NewShowRunCommandForTest(s.apis), runID, "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals,
		`{"run-id":"`+runID+`","pipeline":"p","status":"InProgress"}`+"\n")
}

func (s *runSuite) TestShowRunMissingID(c *gc.C) {
	err := cmdtesting.InitCommand(factory.NewShowRunCommandForTest(nil), nil)
	c.Assert(err, gc.ErrorMatches, "missing run ID")
}

func (s *runSuite) TestShowRunInvalidID(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().RunStatus(gomock.Any(), "nope").Return(datafactory.PipelineRunStatus{}, errors.NotValidf("run ID %q", "nope"))

	_, err := s.run(c, factory.NewShowRunCommandForTest(s.apis), "nope")
	c.Assert(err, gc.ErrorMatches, `run ID "nope" not valid`)
}

func (s *runSuite) TestCancelRun(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().CancelRun(gomock.Any(), runID).Return(nil)

	ctx, err := s.run(c, factory.NewCancelRunCommandForTest(s.apis), runID)
	c.Assert(err, jc.ErrorIsNil)
	s.assertStdout(c, ctx, "Pipeline run "+runID+" cancelled.\n")
}

func (s *runSuite) TestCancelRunTooManyArgs(c *gc.C) {
	err := cmdtesting.InitCommand(factory.NewCancelRunCommandForTest(nil), []string{runID, "extra"})
	c.Assert(err, gc.ErrorMatches, `unrecognized args: \["extra"\]`)
}
