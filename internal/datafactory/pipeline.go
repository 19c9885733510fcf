// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package datafactory

import (
	"context"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/datafactory/armdatafactory"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/config"
)

// CopyPipelineParams describes a pipeline copying one blob into a data
// lake directory.
type CopyPipelineParams struct {
	// Name is the pipeline name. DefaultPipelineName is used if empty.
	Name string

	BlobLinkedService     string
	DataLakeLinkedService string

	// BlobContainer and BlobPath locate the source blob.
	BlobContainer string
	BlobPath      string

	// DataLakeFileSystem and DataLakeDirectory locate the sink folder.
	// The sink file keeps the source file name.
	DataLakeFileSystem string
	DataLakeDirectory  string
}

// Validate checks that the parameters are complete.
func (p CopyPipelineParams) Validate() error {
	if err := config.ValidateEntityName(p.pipelineName()); err != nil {
		return errors.Annotate(err, "pipeline")
	}
	if err := config.ValidateEntityName(p.BlobLinkedService); err != nil {
		return errors.Annotate(err, "blob linked service")
	}
	if err := config.ValidateEntityName(p.DataLakeLinkedService); err != nil {
		return errors.Annotate(err, "data lake linked service")
	}
	if p.BlobContainer == "" {
		return errors.NotValidf("empty blob container")
	}
	if p.sinkFileName() == "" {
		return errors.NotValidf("blob path %q", p.BlobPath)
	}
	if p.DataLakeFileSystem == "" {
		return errors.NotValidf("empty data lake file system")
	}
	return nil
}

func (p CopyPipelineParams) pipelineName() string {
	if p.Name == "" {
		return DefaultPipelineName
	}
	return p.Name
}

// sinkFolder keeps the directory verbatim, so an empty directory
// addresses the root of the file system as "<fs>/".
func (p CopyPipelineParams) sinkFolder() string {
	return p.DataLakeFileSystem + "/" + p.DataLakeDirectory
}

func (p CopyPipelineParams) sinkFileName() string {
	trimmed := strings.TrimRight(p.BlobPath, "/")
	if trimmed == "" {
		return ""
	}
	return path.Base(trimmed)
}

// CreateCopyPipeline creates the source and sink datasets and a pipeline
// with a single copy activity between them. It returns the pipeline name.
func (s *Service) CreateCopyPipeline(ctx context.Context, p CopyPipelineParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", errors.Trace(err)
	}

	source := armdatafactory.DatasetResource{
		Properties: &armdatafactory.AzureBlobDataset{
			Type:              to.Ptr(datasetTypeAzureBlob),
			LinkedServiceName: linkedServiceReference(p.BlobLinkedService),
			TypeProperties: &armdatafactory.AzureBlobDatasetTypeProperties{
				FolderPath: p.BlobContainer,
				FileName:   p.BlobPath,
			},
		},
	}
	if err := s.createDataset(ctx, BlobDatasetName, source); err != nil {
		return "", errors.Trace(err)
	}

	sink := armdatafactory.DatasetResource{
		Properties: &armdatafactory.AzureDataLakeStoreDataset{
			Type:              to.Ptr(datasetTypeDataLakeStore),
			LinkedServiceName: linkedServiceReference(p.DataLakeLinkedService),
			TypeProperties: &armdatafactory.AzureDataLakeStoreDatasetTypeProperties{
				FolderPath: p.sinkFolder(),
				FileName:   p.sinkFileName(),
			},
		},
	}
	if err := s.createDataset(ctx, DataLakeDatasetName, sink); err != nil {
		return "", errors.Trace(err)
	}

	name := p.pipelineName()
	pipeline := armdatafactory.PipelineResource{
		Properties: &armdatafactory.Pipeline{
			Activities: []armdatafactory.ActivityClassification{
				&armdatafactory.CopyActivity{
					Name:    to.Ptr(CopyActivityName),
					Type:    to.Ptr(activityTypeCopy),
					Inputs:  []*armdatafactory.DatasetReference{datasetReference(BlobDatasetName)},
					Outputs: []*armdatafactory.DatasetReference{datasetReference(DataLakeDatasetName)},
					TypeProperties: &armdatafactory.CopyActivityTypeProperties{
						Source: &armdatafactory.BlobSource{Type: to.Ptr(sourceTypeBlob)},
						Sink:   &armdatafactory.AzureDataLakeStoreSink{Type: to.Ptr(sinkTypeDataLakeStore)},
					},
				},
			},
		},
	}
	logger.Debugf("creating pipeline %q", name)
	err := s.caller.Call(ctx, func() error {
		_, err := s.cfg.Pipelines.CreateOrUpdate(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, name, pipeline, nil)
		return err
	})
	if err != nil {
		return "", s.annotate(err, "creating pipeline %q", name)
	}
	return name, nil
}

func (s *Service) createDataset(ctx context.Context, name string, dataset armdatafactory.DatasetResource) error {
	logger.Debugf("creating dataset %q", name)
	err := s.caller.Call(ctx, func() error {
		_, err := s.cfg.Datasets.CreateOrUpdate(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, name, dataset, nil)
		return err
	})
	if err != nil {
		return s.annotate(err, "creating dataset %q", name)
	}
	return nil
}

func linkedServiceReference(name string) *armdatafactory.LinkedServiceReference {
	return &armdatafactory.LinkedServiceReference{
		ReferenceName: to.Ptr(name),
		Type:          to.Ptr(armdatafactory.LinkedServiceReferenceTypeLinkedServiceReference),
	}
}

func datasetReference(name string) *armdatafactory.DatasetReference {
	return &armdatafactory.DatasetReference{
		ReferenceName: to.Ptr(name),
		Type:          to.Ptr(armdatafactory.DatasetReferenceTypeDatasetReference),
	}
}
