// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package blobstore

import (
	"context"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/azure"
)

// BlobClient is the part of the blob service API used by the Uploader.
// *azblob.Client implements it.
type BlobClient interface {
	CreateContainer(ctx context.Context, containerName string, options *azblob.CreateContainerOptions) (azblob.CreateContainerResponse, error)
	UploadFile(ctx context.Context, containerName string, blobName string, file *os.File, options *azblob.UploadFileOptions) (azblob.UploadFileResponse, error)
	NewListBlobsFlatPager(containerName string, options *azblob.ListBlobsFlatOptions) *runtime.Pager[azblob.ListBlobsFlatResponse]
}

// NewClient returns a blob service client authenticating with an Azure
// AD token credential.
func NewClient(serviceURL string, credential azcore.TokenCredential, cloud azure.Cloud) (BlobClient, error) {
	client, err := azblob.NewClient(serviceURL, credential, clientOptions(cloud))
	if err != nil {
		return nil, errors.Annotatef(err, "creating blob client for %q", serviceURL)
	}
	return client, nil
}

// NewSharedKeyClient returns a blob service client authenticating with
// a storage account key.
func NewSharedKeyClient(serviceURL, account, key string, cloud azure.Cloud) (BlobClient, error) {
	cred, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return nil, errors.Annotatef(err, "creating shared key credential for %q", account)
	}
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, clientOptions(cloud))
	if err != nil {
		return nil, errors.Annotatef(err, "creating blob client for %q", serviceURL)
	}
	return client, nil
}

func clientOptions(cloud azure.Cloud) *azblob.ClientOptions {
	return &azblob.ClientOptions{
		ClientOptions: policy.ClientOptions{Cloud: cloud.Configuration},
	}
}
