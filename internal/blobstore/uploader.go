// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package blobstore uploads local files to, and lists blobs in, an Azure
// Blob Storage container.
package blobstore

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/adfctl/internal/azure/errorutils"
	"github.com/canonical/adfctl/internal/config"
)

var logger = loggo.GetLogger("adfctl.blobstore")

const defaultContentType = "application/octet-stream"

// UploaderConfig holds the dependencies of an Uploader.
type UploaderConfig struct {
	Client    BlobClient
	Container string

	// Prefix is prepended to every blob name, e.g. "incoming/".
	Prefix string

	// Parallelism bounds the number of concurrent uploads. Values below
	// one mean one.
	Parallelism int
}

// Validate checks the configuration.
func (c UploaderConfig) Validate() error {
	if c.Client == nil {
		return errors.NotValidf("nil Client")
	}
	if err := config.ValidateContainerName(c.Container); err != nil {
		return errors.Trace(err)
	}
	return nil
}

// Uploader uploads files into a single container.
type Uploader struct {
	cfg UploaderConfig
}

// NewUploader returns an Uploader for the configured container.
func NewUploader(cfg UploaderConfig) (*Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotate(err, "validating uploader configuration")
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return &Uploader{cfg: cfg}, nil
}

// Container returns the name of the target container.
func (u *Uploader) Container() string {
	return u.cfg.Container
}

// EnsureContainer creates the container if it does not exist, reporting
// whether it was created.
func (u *Uploader) EnsureContainer(ctx context.Context) (bool, error) {
	_, err := u.cfg.Client.CreateContainer(ctx, u.cfg.Container, nil)
	if bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		logger.Debugf("container %q already exists", u.cfg.Container)
		return false, nil
	}
	if err != nil {
		return false, errors.Annotatef(errorutils.HandleCredentialError(err), "creating container %q", u.cfg.Container)
	}
	return true, nil
}

// UploadResult records the outcome of uploading one file.
type UploadResult struct {
	Path string
	Blob string
	Size int64
	Err  error
}

// BlobName returns the blob name a local file is uploaded as.
func (u *Uploader) BlobName(path string) string {
	return u.cfg.Prefix + filepath.Base(path)
}

// UploadFiles uploads every file, replacing existing blobs of the same
// name. All files are attempted; results are returned in input order and
// notify, if not nil, is called as each upload finishes. The error
// reports how many uploads failed.
func (u *Uploader) UploadFiles(ctx context.Context, paths []string, notify func(UploadResult)) ([]UploadResult, error) {
	if len(paths) == 0 {
		return nil, errors.NotValidf("no files to upload")
	}
	names := set.NewStrings()
	for _, path := range paths {
		name := u.BlobName(path)
		if names.Contains(name) {
			return nil, errors.NotValidf("duplicate blob name %q from %q", name, path)
		}
		names.Add(name)
	}

	results := make([]UploadResult, len(paths))
	notifyc := make(chan UploadResult)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range notifyc {
			if notify != nil {
				notify(result)
			}
		}
	}()

	var g errgroup.Group
	g.SetLimit(u.cfg.Parallelism)
	for i, path := range paths {
		g.Go(func() error {
			result := UploadResult{Path: path, Blob: u.BlobName(path)}
			if err := ctx.Err(); err != nil {
				result.Err = err
			} else {
				result.Size, result.Err = u.uploadFile(ctx, path, result.Blob)
			}
			results[i] = result
			notifyc <- result
			return nil
		})
	}
	_ = g.Wait()
	close(notifyc)
	<-done

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, errors.Errorf("%d of %d uploads failed", failed, len(paths))
	}
	return results, nil
}

func (u *Uploader) uploadFile(ctx context.Context, path, blobName string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Trace(err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return 0, errors.Trace(err)
	}
	if info.IsDir() {
		return 0, errors.NotValidf("%q is a directory", path)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = defaultContentType
	}
	logger.Debugf("uploading %q (%d bytes) to %s/%s", path, info.Size(), u.cfg.Container, blobName)
	_, err = u.cfg.Client.UploadFile(ctx, u.cfg.Container, blobName, f, &azblob.UploadFileOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return 0, errors.Annotatef(errorutils.HandleCredentialError(err), "uploading %q", blobName)
	}
	return info.Size(), nil
}

// BlobInfo describes a blob in the container.
type BlobInfo struct {
	Name         string    `json:"name" yaml:"name"`
	Size         int64     `json:"size" yaml:"size"`
	ContentType  string    `json:"content-type,omitempty" yaml:"content-type,omitempty"`
	LastModified time.Time `json:"last-modified,omitempty" yaml:"last-modified,omitempty"`
}

// ListBlobs returns the blobs in the container whose names start with
// prefix.
func (u *Uploader) ListBlobs(ctx context.Context, prefix string) ([]BlobInfo, error) {
	var options *azblob.ListBlobsFlatOptions
	if prefix != "" {
		options = &azblob.ListBlobsFlatOptions{Prefix: to.Ptr(prefix)}
	}
	var blobs []BlobInfo
	pager := u.cfg.Client.NewListBlobsFlatPager(u.cfg.Container, options)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if bloberror.HasCode(err, bloberror.ContainerNotFound) {
			return nil, errors.NotFoundf("container %q", u.cfg.Container)
		}
		if err != nil {
			return nil, errors.Annotatef(errorutils.HandleCredentialError(err), "listing container %q", u.cfg.Container)
		}
		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item == nil || item.Name == nil {
				continue
			}
			info := BlobInfo{Name: *item.Name}
			if props := item.Properties; props != nil {
				if props.ContentLength != nil {
					info.Size = *props.ContentLength
				}
				if props.ContentType != nil {
					info.ContentType = *props.ContentType
				}
				if props.LastModified != nil {
					info.LastModified = *props.LastModified
				}
			}
			blobs = append(blobs, info)
		}
	}
	return blobs, nil
}
