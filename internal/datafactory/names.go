// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package datafactory

// Names of the resources created for the copy pipeline.
const (
	BlobDatasetName     = "BlobStorageDataset"
	DataLakeDatasetName = "DataLakeStorageDataset"
	CopyActivityName    = "CopyFromBlobToDataLake"
	DefaultPipelineName = "BlobToDataLakePipeline"
)

// Discriminators of the Data Factory resource types used here.
const (
	linkedServiceTypeBlobStorage = "AzureBlobStorage"
	linkedServiceTypeSQLDatabase = "AzureSqlDatabase"
	datasetTypeAzureBlob         = "AzureBlob"
	datasetTypeDataLakeStore     = "AzureDataLakeStore"
	activityTypeCopy             = "Copy"
	sourceTypeBlob               = "BlobSource"
	sinkTypeDataLakeStore        = "AzureDataLakeStoreSink"
	secureStringType             = "SecureString"
)
