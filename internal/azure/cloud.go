// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azure

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/juju/errors"
)

// Cloud describes an Azure cloud and the endpoint suffixes of the
// services adfctl talks to.
type Cloud struct {
	Name string

	// Configuration is passed to every Azure SDK client.
	Configuration cloud.Configuration

	// StorageEndpointSuffix is the DNS suffix of storage accounts,
	// e.g. core.windows.net.
	StorageEndpointSuffix string

	// SQLServerSuffix is the DNS suffix of Azure SQL servers,
	// e.g. database.windows.net.
	SQLServerSuffix string
}

var clouds = []Cloud{{
	Name:                  "AzurePublic",
	Configuration:         cloud.AzurePublic,
	StorageEndpointSuffix: "core.windows.net",
	SQLServerSuffix:       "database.windows.net",
}, {
	Name:                  "AzureChina",
	Configuration:         cloud.AzureChina,
	StorageEndpointSuffix: "core.chinacloudapi.cn",
	SQLServerSuffix:       "database.chinacloudapi.cn",
}, {
	Name:                  "AzureGovernment",
	Configuration:         cloud.AzureGovernment,
	StorageEndpointSuffix: "core.usgovcloudapi.net",
	SQLServerSuffix:       "database.usgovcloudapi.net",
}}

// LookupCloud returns the cloud with the given name, compared case
// insensitively.
func LookupCloud(name string) (Cloud, error) {
	for _, c := range clouds {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Cloud{}, errors.NotValidf("cloud %q", name)
}

// ClientOptions returns the options used to construct Azure Resource
// Manager clients for this cloud.
func (c Cloud) ClientOptions() *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: c.Configuration,
		},
	}
}

// BlobServiceURL returns the blob service URL of the named storage account.
func (c Cloud) BlobServiceURL(account string) string {
	return "https://" + account + ".blob." + c.StorageEndpointSuffix + "/"
}
