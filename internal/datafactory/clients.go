// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package datafactory

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/datafactory/armdatafactory"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/azure"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/clients_mock.go github.com/canonical/adfctl/internal/datafactory DatasetsClient,FactoriesClient,LinkedServicesClient,PipelineRunsClient,PipelinesClient

// FactoriesClient manages data factories.
type FactoriesClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, factoryName string, factory armdatafactory.Factory, options *armdatafactory.FactoriesClientCreateOrUpdateOptions) (armdatafactory.FactoriesClientCreateOrUpdateResponse, error)
	Get(ctx context.Context, resourceGroupName string, factoryName string, options *armdatafactory.FactoriesClientGetOptions) (armdatafactory.FactoriesClientGetResponse, error)
}

// LinkedServicesClient manages the linked services of a factory.
type LinkedServicesClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, factoryName string, linkedServiceName string, linkedService armdatafactory.LinkedServiceResource, options *armdatafactory.LinkedServicesClientCreateOrUpdateOptions) (armdatafactory.LinkedServicesClientCreateOrUpdateResponse, error)
}

// DatasetsClient manages the datasets of a factory.
type DatasetsClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, factoryName string, datasetName string, dataset armdatafactory.DatasetResource, options *armdatafactory.DatasetsClientCreateOrUpdateOptions) (armdatafactory.DatasetsClientCreateOrUpdateResponse, error)
}

// PipelinesClient manages and runs the pipelines of a factory.
type PipelinesClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, factoryName string, pipelineName string, pipeline armdatafactory.PipelineResource, options *armdatafactory.PipelinesClientCreateOrUpdateOptions) (armdatafactory.PipelinesClientCreateOrUpdateResponse, error)
	CreateRun(ctx context.Context, resourceGroupName string, factoryName string, pipelineName string, options *armdatafactory.PipelinesClientCreateRunOptions) (armdatafactory.PipelinesClientCreateRunResponse, error)
}

// PipelineRunsClient queries and cancels pipeline runs.
type PipelineRunsClient interface {
	Get(ctx context.Context, resourceGroupName string, factoryName string, runID string, options *armdatafactory.PipelineRunsClientGetOptions) (armdatafactory.PipelineRunsClientGetResponse, error)
	Cancel(ctx context.Context, resourceGroupName string, factoryName string, runID string, options *armdatafactory.PipelineRunsClientCancelOptions) (armdatafactory.PipelineRunsClientCancelResponse, error)
}

// Clients holds the Data Factory API clients of one subscription.
type Clients struct {
	Factories      FactoriesClient
	LinkedServices LinkedServicesClient
	Datasets       DatasetsClient
	Pipelines      PipelinesClient
	PipelineRuns   PipelineRunsClient
}

// NewClients returns the real Data Factory clients for the subscription.
func NewClients(subscriptionID string, credential azcore.TokenCredential, cloud azure.Cloud) (Clients, error) {
	options := cloud.ClientOptions()
	factories, err := armdatafactory.NewFactoriesClient(subscriptionID, credential, options)
	if err != nil {
		return Clients{}, errors.Annotate(err, "creating factories client")
	}
	linkedServices, err := armdatafactory.NewLinkedServicesClient(subscriptionID, credential, options)
	if err != nil {
		return Clients{}, errors.Annotate(err, "creating linked services client")
	}
	datasets, err := armdatafactory.NewDatasetsClient(subscriptionID, credential, options)
	if err != nil {
		return Clients{}, errors.Annotate(err, "creating datasets client")
	}
	pipelines, err := armdatafactory.NewPipelinesClient(subscriptionID, credential, options)
	if err != nil {
		return Clients{}, errors.Annotate(err, "creating pipelines client")
	}
	pipelineRuns, err := armdatafactory.NewPipelineRunsClient(subscriptionID, credential, options)
	if err != nil {
		return Clients{}, errors.Annotate(err, "creating pipeline runs client")
	}
	return Clients{
		Factories:      factories,
		LinkedServices: linkedServices,
		Datasets:       datasets,
		Pipelines:      pipelines,
		PipelineRuns:   pipelineRuns,
	}, nil
}
