// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package factory holds the commands that provision and run Azure Data
// Factory resources.
package factory

import (
	"context"
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/config"
	"github.com/canonical/adfctl/internal/datafactory"
)

var logger = loggo.GetLogger("adfctl.cmd.factory")

// The functions below each perform one provisioning step and return the
// message reported on success. They are shared by the single step
// commands and provision.

func ensureResourceGroup(ctx context.Context, apis adfcmd.APIFactory, cfg *config.Config) (string, error) {
	if err := cfg.Require(config.ResourceGroupKey, config.LocationKey); err != nil {
		return "", errors.Trace(err)
	}
	api, err := apis.ResourceGroups(cfg)
	if err != nil {
		return "", errors.Trace(err)
	}
	created, err := api.EnsureResourceGroup(ctx, azure.EnsureResourceGroupParams{
		Name:     cfg.ResourceGroup(),
		Location: cfg.Location(),
		Create:   true,
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	if !created {
		return fmt.Sprintf("Resource group %q already exists.", cfg.ResourceGroup()), nil
	}
	return fmt.Sprintf("Resource group %q created successfully in %q.", cfg.ResourceGroup(), cfg.Location()), nil
}

func createFactory(ctx context.Context, api adfcmd.DataFactoryAPI, cfg *config.Config, tags map[string]string) (string, error) {
	if err := cfg.Require(config.LocationKey); err != nil {
		return "", errors.Trace(err)
	}
	info, err := api.CreateFactory(ctx, cfg.Location(), tags)
	if err != nil {
		return "", errors.Trace(err)
	}
	return fmt.Sprintf("Data Factory %q created successfully in resource group %q.", info.Name, info.ResourceGroup), nil
}

// storageLinkedService describes a Blob Storage linked service and the
// attributes it is configured by.
type storageLinkedService struct {
	name        string
	nameAttr    string
	account     string
	accountAttr string
	key         string
}

func blobLinkedService(cfg *config.Config) storageLinkedService {
	return storageLinkedService{
		name:        cfg.BlobLinkedService(),
		nameAttr:    config.BlobLinkedServiceKey,
		account:     cfg.BlobStorageAccount(),
		accountAttr: config.BlobStorageAccountNameKey,
		key:         cfg.BlobStorageAccountKey(),
	}
}

func dataLakeLinkedService(cfg *config.Config) storageLinkedService {
	return storageLinkedService{
		name:        cfg.DataLakeLinkedService(),
		nameAttr:    config.DataLakeLinkedServiceKey,
		account:     cfg.StorageAccount(),
		accountAttr: config.StorageAccountNameKey,
		key:         cfg.StorageAccountKey(),
	}
}

func createStorageLinkedService(
	ctx context.Context, apis adfcmd.APIFactory, api adfcmd.DataFactoryAPI, cfg *config.Config, ls storageLinkedService,
) (string, error) {
	if err := cfg.Require(ls.nameAttr, ls.accountAttr); err != nil {
		return "", errors.Trace(err)
	}
	key := ls.key
	if key == "" {
		resolver, err := apis.StorageKeys(cfg)
		if err != nil {
			return "", errors.Trace(err)
		}
		logger.Debugf("no key configured for storage account %q, looking it up", ls.account)
		if key, err = resolver.ResolveKey(ctx, cfg.StorageAccountResourceGroup(), ls.account); err != nil {
			return "", errors.Annotate(err, "resolving storage account key")
		}
	}
	err := api.CreateBlobStorageLinkedService(ctx, ls.name, datafactory.StorageAccount{
		Name: ls.account,
		Key:  key,
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	return linkedServiceCreated(ls.name, api), nil
}

func createSQLLinkedService(ctx context.Context, api adfcmd.DataFactoryAPI, cfg *config.Config) (string, error) {
	if err := cfg.Require(
		config.SQLLinkedServiceKey, config.SQLServerKey, config.SQLDatabaseKey, config.SQLUserKey, config.SQLPasswordKey,
	); err != nil {
		return "", errors.Trace(err)
	}
	name := cfg.SQLLinkedService()
	err := api.CreateSQLDatabaseLinkedService(ctx, name, datafactory.SQLDatabase{
		Server:   cfg.SQLServer(),
		Database: cfg.SQLDatabase(),
		User:     cfg.SQLUser(),
		Password: cfg.SQLPassword(),
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	return linkedServiceCreated(name, api), nil
}

func linkedServiceCreated(name string, api adfcmd.DataFactoryAPI) string {
	return fmt.Sprintf("Linked service %q created successfully in Data Factory %q.", name, api.FactoryName())
}

func createCopyPipeline(ctx context.Context, api adfcmd.DataFactoryAPI, cfg *config.Config) (string, error) {
	if err := cfg.Require(
		config.PipelineKey, config.BlobLinkedServiceKey, config.DataLakeLinkedServiceKey,
		config.BlobContainerKey, config.BlobPathKey, config.DataLakeFileSystemKey,
	); err != nil {
		return "", errors.Trace(err)
	}
	created, err := api.CreateCopyPipeline(ctx, datafactory.CopyPipelineParams{
		Name:                  cfg.Pipeline(),
		BlobLinkedService:     cfg.BlobLinkedService(),
		DataLakeLinkedService: cfg.DataLakeLinkedService(),
		BlobContainer:         cfg.BlobContainer(),
		BlobPath:              cfg.BlobPath(),
		DataLakeFileSystem:    cfg.DataLakeFileSystem(),
		DataLakeDirectory:     cfg.DataLakeDirectory(),
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	return fmt.Sprintf("Pipeline %q created successfully.", created), nil
}

func runPipeline(ctx context.Context, api adfcmd.DataFactoryAPI, cfg *config.Config, params map[string]any) (string, string, error) {
	if err := cfg.Require(config.PipelineKey); err != nil {
		return "", "", errors.Trace(err)
	}
	runID, err := api.RunPipeline(ctx, cfg.Pipeline(), params)
	if err != nil {
		return "", "", errors.Trace(err)
	}
	return runID, fmt.Sprintf("Pipeline run triggered successfully with run ID: %s", runID), nil
}
