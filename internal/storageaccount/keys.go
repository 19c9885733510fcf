// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package storageaccount looks up storage account access keys so that
// linked services can be created without keys in the configuration.
package storageaccount

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/azure/errorutils"
)

var logger = loggo.GetLogger("adfctl.storageaccount")

// AccountsClient is the part of the storage accounts API used to read
// account keys.
type AccountsClient interface {
	ListKeys(ctx context.Context, resourceGroupName string, accountName string, options *armstorage.AccountsClientListKeysOptions) (armstorage.AccountsClientListKeysResponse, error)
}

// NewAccountsClient returns the real storage accounts client.
func NewAccountsClient(subscriptionID string, credential azcore.TokenCredential, cloud azure.Cloud) (AccountsClient, error) {
	client, err := armstorage.NewAccountsClient(subscriptionID, credential, cloud.ClientOptions())
	if err != nil {
		return nil, errors.Annotate(err, "creating storage accounts client")
	}
	return client, nil
}

// KeyResolver finds a usable access key for a storage account.
type KeyResolver struct {
	client AccountsClient
	caller azure.BackoffCaller
}

// NewKeyResolver returns a KeyResolver using client.
func NewKeyResolver(client AccountsClient, caller azure.BackoffCaller) *KeyResolver {
	return &KeyResolver{client: client, caller: caller}
}

// ResolveKey returns the first key of the account with full permissions.
func (r *KeyResolver) ResolveKey(ctx context.Context, resourceGroup, account string) (string, error) {
	if resourceGroup == "" || account == "" {
		return "", errors.NotValidf("storage account %q in resource group %q", account, resourceGroup)
	}
	var resp armstorage.AccountsClientListKeysResponse
	err := r.caller.Call(ctx, func() error {
		var err error
		resp, err = r.client.ListKeys(ctx, resourceGroup, account, nil)
		return err
	})
	if err != nil {
		err = errorutils.HandleCredentialError(err)
		if errorutils.IsNotFoundError(err) {
			return "", errors.NotFoundf("storage account %q in resource group %q", account, resourceGroup)
		}
		return "", errors.Annotatef(err, "listing keys of storage account %q", account)
	}
	for _, key := range resp.Keys {
		if key == nil || key.Value == nil || *key.Value == "" {
			continue
		}
		if key.Permissions == nil || !strings.EqualFold(string(*key.Permissions), string(armstorage.KeyPermissionFull)) {
			continue
		}
		if key.KeyName != nil {
			logger.Debugf("using key %q of storage account %q", *key.KeyName, account)
		}
		return *key.Value, nil
	}
	return "", errors.NotFoundf("key with full permissions for storage account %q", account)
}
