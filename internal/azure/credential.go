// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/juju/errors"
)

// CredentialParams holds the values used to build an Azure credential.
type CredentialParams struct {
	Cloud        Cloud
	TenantID     string
	ClientID     string
	ClientSecret string
}

// HasServicePrincipal reports whether a complete service principal was
// supplied.
func (p CredentialParams) HasServicePrincipal() bool {
	return p.TenantID != "" && p.ClientID != "" && p.ClientSecret != ""
}

// NewCredential returns a client secret credential when a service
// principal is configured. A client id without a secret selects a
// user-assigned identity, tried as workload identity, then managed
// identity, then the Azure CLI. Otherwise the default credential chain
// (environment, workload identity, managed identity, Azure CLI) is used.
func NewCredential(p CredentialParams) (azcore.TokenCredential, error) {
	clientOptions := policy.ClientOptions{Cloud: p.Cloud.Configuration}
	if p.HasServicePrincipal() {
		logger.Debugf("using service principal %q in tenant %q", p.ClientID, p.TenantID)
		cred, err := azidentity.NewClientSecretCredential(p.TenantID, p.ClientID, p.ClientSecret,
			&azidentity.ClientSecretCredentialOptions{ClientOptions: clientOptions},
		)
		if err != nil {
			return nil, errors.Annotate(err, "creating service principal credential")
		}
		return cred, nil
	}
	if p.ClientSecret != "" {
		return nil, errors.NotValidf("client-secret without tenant-id and client-id")
	}
	if p.ClientID != "" {
		return newIdentityCredential(p, clientOptions)
	}
	logger.Debugf("using default azure credential chain")
	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: clientOptions,
		TenantID:      p.TenantID,
	})
	if err != nil {
		return nil, errors.Annotate(err, "creating default azure credential")
	}
	return cred, nil
}

func newIdentityCredential(p CredentialParams, clientOptions policy.ClientOptions) (azcore.TokenCredential, error) {
	logger.Debugf("using identity %q", p.ClientID)
	var sources []azcore.TokenCredential
	workload, err := azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
		ClientOptions: clientOptions,
		ClientID:      p.ClientID,
		TenantID:      p.TenantID,
	})
	if err == nil {
		sources = append(sources, workload)
	} else {
		logger.Tracef("workload identity unavailable: %v", err)
	}
	managed, err := azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{
		ClientOptions: clientOptions,
		ID:            azidentity.ClientID(p.ClientID),
	})
	if err == nil {
		sources = append(sources, managed)
	} else {
		logger.Tracef("managed identity unavailable: %v", err)
	}
	cli, err := azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{TenantID: p.TenantID})
	if err != nil {
		return nil, errors.Annotate(err, "creating azure cli credential")
	}
	sources = append(sources, cli)
	cred, err := azidentity.NewChainedTokenCredential(sources, nil)
	if err != nil {
		return nil, errors.Annotatef(err, "creating credential for identity %q", p.ClientID)
	}
	return cred, nil
}
