// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/azure/errorutils"
)

// ResourceGroupsClient is the part of the resource groups API used by
// adfctl.
type ResourceGroupsClient interface {
	CheckExistence(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientCheckExistenceOptions) (armresources.ResourceGroupsClientCheckExistenceResponse, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup, options *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error)
}

// EnsureResourceGroupParams describes the resource group that must exist.
type EnsureResourceGroupParams struct {
	Name     string
	Location string
	Tags     map[string]string

	// Create allows a missing resource group to be created.
	Create bool
}

// EnsureResourceGroup checks that the resource group exists, creating
// it if asked to. It reports whether the group was created.
func EnsureResourceGroup(ctx context.Context, client ResourceGroupsClient, p EnsureResourceGroupParams) (bool, error) {
	resp, err := client.CheckExistence(ctx, p.Name, nil)
	if err != nil {
		return false, errors.Annotatef(errorutils.HandleCredentialError(err), "checking resource group %q", p.Name)
	}
	if resp.Success {
		logger.Debugf("resource group %q exists", p.Name)
		return false, nil
	}
	if !p.Create {
		return false, errors.NotFoundf("resource group %q", p.Name)
	}
	if p.Location == "" {
		return false, errors.NotValidf("creating resource group %q without a location", p.Name)
	}
	logger.Infof("creating resource group %q in %q", p.Name, p.Location)
	_, err = client.CreateOrUpdate(ctx, p.Name, armresources.ResourceGroup{
		Location: toPtr(p.Location),
		Tags:     toTags(p.Tags),
	}, nil)
	if err != nil {
		return false, errors.Annotatef(errorutils.HandleCredentialError(err), "creating resource group %q", p.Name)
	}
	return true, nil
}
