// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storage_test

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/cmd/adfctl/adfcmd/mocks"
	"github.com/canonical/adfctl/cmd/adfctl/storage"
	"github.com/canonical/adfctl/internal/blobstore"
	"github.com/canonical/adfctl/internal/cmd"
	"github.com/canonical/adfctl/internal/cmd/cmdtesting"
)

type storageSuite struct {
	jujutesting.IsolationSuite

	env   map[string]string
	apis  *mocks.MockAPIFactory
	blobs *mocks.MockBlobAPI
}

var _ = gc.Suite(&storageSuite{})

func (s *storageSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.env = map[string]string{
		"STORAGE_ACCOUNT_URL": "https://acct.blob.core.windows.net/",
	}
}

func (s *storageSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.apis = mocks.NewMockAPIFactory(ctrl)
	s.blobs = mocks.NewMockBlobAPI(ctrl)
	return ctrl
}

func (s *storageSuite) run(c *gc.C, command cmd.Command, args ...string) (*cmd.Context, error) {
	ctx := cmdtesting.ContextWithEnv(c, s.env)
	return cmdtesting.RunCommandInContext(ctx, command, args...)
}

func (s *storageSuite) expectBlobs(params adfcmd.BlobParams) {
	s.apis.EXPECT().Blobs(gomock.Any(), params).Return(s.blobs, nil)
	s.blobs.EXPECT().Container().Return(params.Container).AnyTimes()
}

// uploadAll answers UploadFiles by reporting each path through notify,
// failing the paths for which fail returns an error.
func uploadAll(fail func(path string) error) func(any, []string, func(blobstore.UploadResult)) ([]blobstore.UploadResult, error) {
	return func(_ any, paths []string, notify func(blobstore.UploadResult)) ([]blobstore.UploadResult, error) {
		var results []blobstore.UploadResult
		failed := 0
		for _, p := range paths {
			r := blobstore.UploadResult{Path: p, Blob: filepath.Base(p), Size: 1024, Err: fail(p)}
			if r.Err != nil {
				failed++
			}
			notify(r)
			results = append(results, r)
		}
		if failed > 0 {
			return results, errors.Errorf("%d of %d uploads failed", failed, len(paths))
		}
		return results, nil
	}
}

func noFailures(string) error { return nil }

func (s *storageSuite) TestUpload(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer", Parallelism: 1})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(true, nil)
	s.blobs.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(uploadAll(noFailures))

	ctx, err := s.run(c, storage.NewUploadCommandForTest(s.apis), "sample1.txt", "data/sample2.txt")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, ""+
		"Container \"mycontainer\" created successfully.\n"+
		"File \"sample1.txt\" uploaded to blob \"sample1.txt\" successfully.\n"+
		"File \"data/sample2.txt\" uploaded to blob \"sample2.txt\" successfully.\n")
}

func (s *storageSuite) TestUploadPassesAbsolutePaths(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer", Parallelism: 1})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(false, nil)
	var uploaded []string
	s.blobs.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, paths []string, notify func(blobstore.UploadResult)) ([]blobstore.UploadResult, error) {
			uploaded = paths
			return nil, nil
		})

	ctx := cmdtesting.ContextWithEnv(c, s.env)
	_, err := cmdtesting.RunCommandInContext(ctx, storage.NewUploadCommandForTest(s.apis), "a.txt")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(uploaded, jc.DeepEquals, []string{filepath.Join(ctx.Dir, "a.txt")})
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "Container \"mycontainer\" already exists.\n")
}

func (s *storageSuite) TestUploadFlags(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "landing", Prefix: "2024/05/", Parallelism: 4})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(false, nil)
	s.blobs.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.run(c, storage.NewUploadCommandForTest(s.apis),
		"--container", "landing", "--prefix", "2024/05/", "--parallel", "4", "orders.csv")
	c.Assert(err, jc.ErrorIsNil)
}

func (s *storageSuite) TestUploadContainerFromEnv(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.env["UPLOAD_CONTAINER"] = "from-env"
	s.expectBlobs(adfcmd.BlobParams{Container: "from-env", Parallelism: 1})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(false, nil)
	s.blobs.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.run(c, storage.NewUploadCommandForTest(s.apis), "a.txt")
	c.Assert(err, jc.ErrorIsNil)
}

func (s *storageSuite) TestUploadPartialFailure(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer", Parallelism: 1})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(false, nil)
	s.blobs.EXPECT().UploadFiles(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(uploadAll(func(p string) error {
		if strings.HasSuffix(p, "missing.txt") {
			return errors.New("open missing.txt: no such file or directory")
		}
		return nil
	}))

	ctx, err := s.run(c, storage.NewUploadCommandForTest(s.apis), "missing.txt", "ok.txt")
	c.Assert(err, gc.ErrorMatches, "1 of 2 uploads failed")
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "File \"ok.txt\" uploaded to blob \"ok.txt\" successfully.\n")
	c.Check(cmdtesting.Stderr(ctx), gc.Equals,
		"ERROR uploading \"missing.txt\": open missing.txt: no such file or directory\n")
}

func (s *storageSuite) TestUploadContainerError(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer", Parallelism: 1})
	s.blobs.EXPECT().EnsureContainer(gomock.Any()).Return(false, errors.Unauthorizedf("creating container"))

	_, err := s.run(c, storage.NewUploadCommandForTest(s.apis), "a.txt")
	c.Assert(err, jc.ErrorIs, errors.Unauthorized)
}

func (s *storageSuite) TestUploadInitErrors(c *gc.C) {
	err := cmdtesting.InitCommand(storage.NewUploadCommandForTest(nil), nil)
	c.Check(err, gc.ErrorMatches, "no files specified")

	err = cmdtesting.InitCommand(storage.NewUploadCommandForTest(nil), []string{"--parallel", "0", "a.txt"})
	c.Check(err, jc.ErrorIs, errors.NotValid)
}

func (s *storageSuite) TestUploadInvalidContainer(c *gc.C) {
	_, err := s.run(c, storage.NewUploadCommandForTest(nil), "--container", "Bad_Container", "a.txt")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	c.Assert(err, gc.ErrorMatches, `upload-container: container name "Bad_Container" .*not valid`)
}

func (s *storageSuite) blobList() []blobstore.BlobInfo {
	modified := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []blobstore.BlobInfo{
		{Name: "part-10.csv", Size: 2048, ContentType: "text/csv", LastModified: modified},
		{Name: "part-2.csv", Size: 1500000, ContentType: "text/csv", LastModified: modified},
		{Name: "part-1.csv", Size: 12, ContentType: "text/csv"},
	}
}

func (s *storageSuite) TestListBlobsTabular(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer"})
	s.blobs.EXPECT().ListBlobs(gomock.Any(), "").Return(s.blobList(), nil)

	ctx, err := s.run(c, storage.NewListBlobsCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIsNil)

	var lines []string
	for _, line := range strings.Split(cmdtesting.Stdout(ctx), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	c.Check(lines, jc.DeepEquals, []string{
		"Name Size Content type Last modified",
		"part-1.csv 12 B text/csv",
		"part-2.csv 1.5 MB text/csv 2024-05-01T10:00:00Z",
		"part-10.csv 2.0 kB text/csv 2024-05-01T10:00:00Z",
	})
}

func (s *storageSuite) TestListBlobsYAML(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "landing"})
	s.blobs.EXPECT().ListBlobs(gomock.Any(), "2024/").Return([]blobstore.BlobInfo{
		{Name: "2024/a.txt", Size: 3, ContentType: "text/plain", LastModified: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}, nil)

	ctx, err := s.run(c, storage.NewListBlobsCommandForTest(s.apis),
		"--container", "landing", "--prefix", "2024/", "--format", "yaml")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, ""+
		"- name: 2024/a.txt\n"+
		"  size: 3\n"+
		"  content-type: text/plain\n"+
		"  last-modified: 2024-05-01T10:00:00Z\n")
}

func (s *storageSuite) TestListBlobsEmpty(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer"})
	s.blobs.EXPECT().ListBlobs(gomock.Any(), "").Return(nil, nil)

	ctx, err := s.run(c, storage.NewListBlobsCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "")
	c.Check(cmdtesting.Stderr(ctx), gc.Equals, "No blobs in container \"mycontainer\".\n")
}

func (s *storageSuite) TestListBlobsContainerNotFound(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectBlobs(adfcmd.BlobParams{Container: "mycontainer"})
	s.blobs.EXPECT().ListBlobs(gomock.Any(), "").Return(nil, errors.NotFoundf("container %q", "mycontainer"))

	_, err := s.run(c, storage.NewListBlobsCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}
