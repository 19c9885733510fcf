// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package adfcmd

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/blobstore"
	"github.com/canonical/adfctl/internal/config"
	"github.com/canonical/adfctl/internal/datafactory"
	"github.com/canonical/adfctl/internal/storageaccount"
)

// NewAzureAPIFactory returns an APIFactory talking to Azure.
func NewAzureAPIFactory() APIFactory {
	return &azureAPIFactory{clock: clock.WallClock}
}

type azureAPIFactory struct {
	clock clock.Clock

	credential azcore.TokenCredential
	cloud      azure.Cloud
}

// session returns the credential and cloud for cfg, creating the
// credential once.
func (f *azureAPIFactory) session(cfg *config.Config) (azcore.TokenCredential, azure.Cloud, error) {
	if f.credential != nil {
		return f.credential, f.cloud, nil
	}
	cloud, err := azure.LookupCloud(cfg.Cloud())
	if err != nil {
		return nil, azure.Cloud{}, errors.Trace(err)
	}
	cred, err := azure.NewCredential(azure.CredentialParams{
		Cloud:        cloud,
		TenantID:     cfg.TenantID(),
		ClientID:     cfg.ClientID(),
		ClientSecret: cfg.ClientSecret(),
	})
	if err != nil {
		return nil, azure.Cloud{}, errors.Trace(err)
	}
	f.credential, f.cloud = cred, cloud
	return cred, cloud, nil
}

// DataFactory is part of the APIFactory interface.
func (f *azureAPIFactory) DataFactory(cfg *config.Config) (DataFactoryAPI, error) {
	if err := cfg.Require(config.SubscriptionIDKey, config.ResourceGroupKey, config.DataFactoryKey); err != nil {
		return nil, errors.Trace(err)
	}
	cred, cloud, err := f.session(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	clients, err := datafactory.NewClients(cfg.SubscriptionID(), cred, cloud)
	if err != nil {
		return nil, errors.Trace(err)
	}
	svc, err := datafactory.NewService(datafactory.Config{
		Clients:       clients,
		ResourceGroup: cfg.ResourceGroup(),
		FactoryName:   cfg.DataFactory(),
		Cloud:         cloud,
		Clock:         f.clock,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return svc, nil
}

// ResourceGroups is part of the APIFactory interface.
func (f *azureAPIFactory) ResourceGroups(cfg *config.Config) (ResourceGroupAPI, error) {
	if err := cfg.Require(config.SubscriptionIDKey); err != nil {
		return nil, errors.Trace(err)
	}
	cred, cloud, err := f.session(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	client, err := armresources.NewResourceGroupsClient(cfg.SubscriptionID(), cred, cloud.ClientOptions())
	if err != nil {
		return nil, errors.Annotate(err, "creating resource groups client")
	}
	return resourceGroupAPI{client: client}, nil
}

type resourceGroupAPI struct {
	client azure.ResourceGroupsClient
}

func (r resourceGroupAPI) EnsureResourceGroup(ctx context.Context, p azure.EnsureResourceGroupParams) (bool, error) {
	return azure.EnsureResourceGroup(ctx, r.client, p)
}

// StorageKeys is part of the APIFactory interface.
func (f *azureAPIFactory) StorageKeys(cfg *config.Config) (KeyResolver, error) {
	if err := cfg.Require(config.SubscriptionIDKey); err != nil {
		return nil, errors.Trace(err)
	}
	cred, cloud, err := f.session(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	client, err := storageaccount.NewAccountsClient(cfg.SubscriptionID(), cred, cloud)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return storageaccount.NewKeyResolver(client, azure.BackoffCaller{Clock: f.clock}), nil
}

// Blobs is part of the APIFactory interface.
func (f *azureAPIFactory) Blobs(cfg *config.Config, p BlobParams) (BlobAPI, error) {
	cloud, err := azure.LookupCloud(cfg.Cloud())
	if err != nil {
		return nil, errors.Trace(err)
	}
	target, err := ResolveBlobTarget(cfg, cloud)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var client blobstore.BlobClient
	if target.Key != "" {
		logger.Debugf("using shared key for storage account %q", target.Account)
		client, err = blobstore.NewSharedKeyClient(target.URL, target.Account, target.Key, cloud)
	} else {
		var cred azcore.TokenCredential
		cred, _, err = f.session(cfg)
		if err != nil {
			return nil, errors.Trace(err)
		}
		client, err = blobstore.NewClient(target.URL, cred, cloud)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	return blobstore.NewUploader(blobstore.UploaderConfig{
		Client:      client,
		Container:   p.Container,
		Prefix:      p.Prefix,
		Parallelism: p.Parallelism,
	})
}

// Subscription is part of the APIFactory interface.
func (f *azureAPIFactory) Subscription(cfg *config.Config) (SubscriptionAPI, error) {
	if err := cfg.Require(config.SubscriptionIDKey); err != nil {
		return nil, errors.Trace(err)
	}
	cred, cloud, err := f.session(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	client, err := armsubscriptions.NewClient(cred, cloud.ClientOptions())
	if err != nil {
		return nil, errors.Annotate(err, "creating subscriptions client")
	}
	return subscriptionAPI{client: client, id: cfg.SubscriptionID()}, nil
}

type subscriptionAPI struct {
	client azure.SubscriptionsClient
	id     string
}

func (s subscriptionAPI) VerifySubscription(ctx context.Context) (azure.Subscription, error) {
	return azure.VerifySubscription(ctx, s.client, s.id)
}

// BlobTarget is the blob service an upload talks to.
type BlobTarget struct {
	URL     string
	Account string
	Key     string
}

// ResolveBlobTarget works out the blob service URL and credentials from
// the configuration. The blob storage account is preferred over the
// data lake storage account. A key is only used when one is configured
// for the chosen account; otherwise the Azure AD credential is used.
func ResolveBlobTarget(cfg *config.Config, cloud azure.Cloud) (BlobTarget, error) {
	target := BlobTarget{
		Account: cfg.BlobStorageAccount(),
		Key:     cfg.BlobStorageAccountKey(),
	}
	if target.Account == "" {
		target.Account = cfg.StorageAccount()
		target.Key = cfg.StorageAccountKey()
	}
	target.URL = cfg.StorageAccountURL()
	if target.URL == "" {
		if target.Account == "" {
			return BlobTarget{}, errors.NotValidf("empty %s, %s and %s",
				config.StorageAccountURLKey, config.BlobStorageAccountNameKey, config.StorageAccountNameKey)
		}
		target.URL = cloud.BlobServiceURL(target.Account)
	}
	if target.Account == "" {
		target.Key = ""
	}
	return target, nil
}
