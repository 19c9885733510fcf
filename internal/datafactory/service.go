// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package datafactory provisions Azure Data Factory resources: the
// factory itself, linked services, the blob to data lake copy pipeline
// and its runs.
package datafactory

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/datafactory/armdatafactory"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/azure/errorutils"
	"github.com/canonical/adfctl/internal/config"
)

var logger = loggo.GetLogger("adfctl.datafactory")

// Config holds the dependencies of a Service.
type Config struct {
	Clients

	// ResourceGroup and FactoryName locate the factory.
	ResourceGroup string
	FactoryName   string

	// Cloud supplies the endpoint suffixes used in connection strings.
	Cloud azure.Cloud

	// Clock is used when waiting for pipeline runs and when backing
	// off throttled requests.
	Clock clock.Clock
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Factories == nil {
		return errors.NotValidf("nil Factories")
	}
	if c.LinkedServices == nil {
		return errors.NotValidf("nil LinkedServices")
	}
	if c.Datasets == nil {
		return errors.NotValidf("nil Datasets")
	}
	if c.Pipelines == nil {
		return errors.NotValidf("nil Pipelines")
	}
	if c.PipelineRuns == nil {
		return errors.NotValidf("nil PipelineRuns")
	}
	if c.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if c.ResourceGroup == "" {
		return errors.NotValidf("empty ResourceGroup")
	}
	if err := config.ValidateFactoryName(c.FactoryName); err != nil {
		return errors.Trace(err)
	}
	if c.Cloud.StorageEndpointSuffix == "" || c.Cloud.SQLServerSuffix == "" {
		return errors.NotValidf("cloud %q without endpoint suffixes", c.Cloud.Name)
	}
	return nil
}

// Service performs Data Factory operations on a single factory.
type Service struct {
	cfg    Config
	caller azure.BackoffCaller
}

// NewService returns a Service for the configured factory.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotate(err, "validating data factory configuration")
	}
	return &Service{
		cfg:    cfg,
		caller: azure.BackoffCaller{Clock: cfg.Clock},
	}, nil
}

// FactoryName returns the name of the factory the service manages.
func (s *Service) FactoryName() string {
	return s.cfg.FactoryName
}

// ResourceGroup returns the resource group of the factory.
func (s *Service) ResourceGroup() string {
	return s.cfg.ResourceGroup
}

// FactoryInfo describes a data factory.
type FactoryInfo struct {
	Name              string    `json:"name" yaml:"name"`
	ResourceGroup     string    `json:"resource-group" yaml:"resource-group"`
	Location          string    `json:"location" yaml:"location"`
	ID                string    `json:"id,omitempty" yaml:"id,omitempty"`
	ProvisioningState string    `json:"provisioning-state,omitempty" yaml:"provisioning-state,omitempty"`
	Created           time.Time `json:"created,omitempty" yaml:"created,omitempty"`
}

// CreateFactory creates the factory in location, or updates it if it
// already exists.
func (s *Service) CreateFactory(ctx context.Context, location string, tags map[string]string) (FactoryInfo, error) {
	location = config.CanonicalLocation(location)
	if location == "" {
		return FactoryInfo{}, errors.NotValidf("empty location")
	}
	factory := armdatafactory.Factory{
		Location: to.Ptr(location),
		Tags:     toTags(tags),
	}
	logger.Debugf("creating data factory %q in %q", s.cfg.FactoryName, location)
	var resp armdatafactory.FactoriesClientCreateOrUpdateResponse
	err := s.caller.Call(ctx, func() error {
		var err error
		resp, err = s.cfg.Factories.CreateOrUpdate(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, factory, nil)
		return err
	})
	if err != nil {
		return FactoryInfo{}, s.annotate(err, "creating data factory %q", s.cfg.FactoryName)
	}
	return s.factoryInfo(resp.Factory, location), nil
}

// GetFactory returns the factory, or an error satisfying
// errors.Is(err, errors.NotFound) if it does not exist.
func (s *Service) GetFactory(ctx context.Context) (FactoryInfo, error) {
	var resp armdatafactory.FactoriesClientGetResponse
	err := s.caller.Call(ctx, func() error {
		var err error
		resp, err = s.cfg.Factories.Get(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, nil)
		return err
	})
	if err != nil {
		if errorutils.IsNotFoundError(err) {
			return FactoryInfo{}, errors.NotFoundf("data factory %q in resource group %q", s.cfg.FactoryName, s.cfg.ResourceGroup)
		}
		return FactoryInfo{}, s.annotate(err, "getting data factory %q", s.cfg.FactoryName)
	}
	return s.factoryInfo(resp.Factory, ""), nil
}

func (s *Service) factoryInfo(f armdatafactory.Factory, location string) FactoryInfo {
	info := FactoryInfo{
		Name:          s.cfg.FactoryName,
		ResourceGroup: s.cfg.ResourceGroup,
		Location:      location,
		ID:            toValue(f.ID),
	}
	if f.Location != nil {
		info.Location = config.CanonicalLocation(*f.Location)
	}
	if f.Properties != nil {
		info.ProvisioningState = toValue(f.Properties.ProvisioningState)
		info.Created = toValue(f.Properties.CreateTime)
	}
	return info
}

// CreateBlobStorageLinkedService creates an Azure Blob Storage linked
// service authenticating with the account key.
func (s *Service) CreateBlobStorageLinkedService(ctx context.Context, name string, account StorageAccount) error {
	if err := config.ValidateEntityName(name); err != nil {
		return errors.Annotate(err, "linked service")
	}
	if err := account.Validate(); err != nil {
		return errors.Trace(err)
	}
	linkedService := armdatafactory.LinkedServiceResource{
		Properties: &armdatafactory.AzureBlobStorageLinkedService{
			Type: to.Ptr(linkedServiceTypeBlobStorage),
			TypeProperties: &armdatafactory.AzureBlobStorageLinkedServiceTypeProperties{
				ConnectionString: secureString(BlobConnectionString(account, s.cfg.Cloud.StorageEndpointSuffix)),
			},
		},
	}
	logger.Debugf("creating blob storage linked service %q for account %q", name, account.Name)
	return s.createLinkedService(ctx, name, linkedService)
}

// CreateSQLDatabaseLinkedService creates an Azure SQL Database linked
// service authenticating with a SQL login.
func (s *Service) CreateSQLDatabaseLinkedService(ctx context.Context, name string, db SQLDatabase) error {
	if err := config.ValidateEntityName(name); err != nil {
		return errors.Annotate(err, "linked service")
	}
	if err := db.Validate(); err != nil {
		return errors.Trace(err)
	}
	linkedService := armdatafactory.LinkedServiceResource{
		Properties: &armdatafactory.AzureSQLDatabaseLinkedService{
			Type: to.Ptr(linkedServiceTypeSQLDatabase),
			TypeProperties: &armdatafactory.AzureSQLDatabaseLinkedServiceTypeProperties{
				ConnectionString: secureString(SQLConnectionString(db, s.cfg.Cloud.SQLServerSuffix)),
			},
		},
	}
	logger.Debugf("creating SQL database linked service %q for %s/%s", name, db.Server, db.Database)
	return s.createLinkedService(ctx, name, linkedService)
}

func (s *Service) createLinkedService(ctx context.Context, name string, linkedService armdatafactory.LinkedServiceResource) error {
	err := s.caller.Call(ctx, func() error {
		_, err := s.cfg.LinkedServices.CreateOrUpdate(ctx, s.cfg.ResourceGroup, s.cfg.FactoryName, name, linkedService, nil)
		return err
	})
	if err != nil {
		return s.annotate(err, "creating linked service %q", name)
	}
	return nil
}

// annotate marks credential failures and adds context to err.
func (s *Service) annotate(err error, format string, args ...any) error {
	return errors.Annotatef(errorutils.HandleCredentialError(err), format, args...)
}

func secureString(value string) *armdatafactory.SecureString {
	return &armdatafactory.SecureString{
		Type:  to.Ptr(secureStringType),
		Value: to.Ptr(value),
	}
}

func toValue[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func toTags(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	result := make(map[string]*string, len(tags))
	for k, v := range tags {
		result[k] = to.Ptr(v)
	}
	return result
}
