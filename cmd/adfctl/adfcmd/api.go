// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package adfcmd

import (
	"context"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/blobstore"
	"github.com/canonical/adfctl/internal/config"
	"github.com/canonical/adfctl/internal/datafactory"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/api_mock.go github.com/canonical/adfctl/cmd/adfctl/adfcmd APIFactory,DataFactoryAPI,ResourceGroupAPI,KeyResolver,BlobAPI,SubscriptionAPI

// DataFactoryAPI is the data factory functionality used by commands.
// *datafactory.Service implements it.
type DataFactoryAPI interface {
	FactoryName() string
	ResourceGroup() string
	CreateFactory(ctx context.Context, location string, tags map[string]string) (datafactory.FactoryInfo, error)
	GetFactory(ctx context.Context) (datafactory.FactoryInfo, error)
	CreateBlobStorageLinkedService(ctx context.Context, name string, account datafactory.StorageAccount) error
	CreateSQLDatabaseLinkedService(ctx context.Context, name string, db datafactory.SQLDatabase) error
	CreateCopyPipeline(ctx context.Context, p datafactory.CopyPipelineParams) (string, error)
	RunPipeline(ctx context.Context, name string, parameters map[string]any) (string, error)
	RunStatus(ctx context.Context, runID string) (datafactory.PipelineRunStatus, error)
	WaitForRun(ctx context.Context, runID string, p datafactory.WaitParams) (datafactory.PipelineRunStatus, error)
	CancelRun(ctx context.Context, runID string) error
}

// ResourceGroupAPI ensures resource groups exist.
type ResourceGroupAPI interface {
	EnsureResourceGroup(ctx context.Context, p azure.EnsureResourceGroupParams) (bool, error)
}

// KeyResolver looks up storage account keys.
// *storageaccount.KeyResolver implements it.
type KeyResolver interface {
	ResolveKey(ctx context.Context, resourceGroup, account string) (string, error)
}

// BlobAPI uploads to and lists a container.
// *blobstore.Uploader implements it.
type BlobAPI interface {
	Container() string
	EnsureContainer(ctx context.Context) (bool, error)
	UploadFiles(ctx context.Context, paths []string, notify func(blobstore.UploadResult)) ([]blobstore.UploadResult, error)
	ListBlobs(ctx context.Context, prefix string) ([]blobstore.BlobInfo, error)
}

// SubscriptionAPI checks access to the configured subscription.
type SubscriptionAPI interface {
	VerifySubscription(ctx context.Context) (azure.Subscription, error)
}

// BlobParams selects the container a BlobAPI works on.
type BlobParams struct {
	Container   string
	Prefix      string
	Parallelism int
}

// APIFactory builds the APIs used by commands from a configuration.
type APIFactory interface {
	DataFactory(cfg *config.Config) (DataFactoryAPI, error)
	ResourceGroups(cfg *config.Config) (ResourceGroupAPI, error)
	StorageKeys(cfg *config.Config) (KeyResolver, error)
	Blobs(cfg *config.Config, p BlobParams) (BlobAPI, error)
	Subscription(cfg *config.Config) (SubscriptionAPI, error)
}
