// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/schema"
	"gopkg.in/yaml.v3"
)

var logger = loggo.GetLogger("adfctl.config")

// The configuration keys understood by adfctl.
const (
	SubscriptionIDKey              = "subscription-id"
	TenantIDKey                    = "tenant-id"
	ClientIDKey                    = "client-id"
	ClientSecretKey                = "client-secret"
	CloudKey                       = "cloud"
	ResourceGroupKey               = "resource-group"
	DataFactoryKey                 = "data-factory"
	LocationKey                    = "location"
	StorageAccountNameKey          = "storage-account"
	StorageAccountAccessKeyKey     = "storage-account-key"
	StorageAccountResourceGroupKey = "storage-account-resource-group"
	BlobLinkedServiceKey           = "blob-linked-service"
	BlobStorageAccountNameKey      = "blob-storage-account"
	BlobStorageAccountAccessKeyKey = "blob-storage-account-key"
	DataLakeLinkedServiceKey       = "data-lake-linked-service"
	SQLLinkedServiceKey            = "sql-linked-service"
	SQLServerKey                   = "sql-server"
	SQLDatabaseKey                 = "sql-database"
	SQLUserKey                     = "sql-user"
	SQLPasswordKey                 = "sql-password"
	BlobContainerKey               = "blob-container"
	BlobPathKey                    = "blob-path"
	DataLakeFileSystemKey          = "data-lake-file-system"
	DataLakeDirectoryKey           = "data-lake-directory"
	PipelineKey                    = "pipeline"
	StorageAccountURLKey           = "storage-account-url"
	UploadContainerKey             = "upload-container"
	CreateResourceGroupKey         = "create-resource-group"
)

// Default values for optional attributes.
const (
	DefaultCloud                 = "AzurePublic"
	DefaultBlobLinkedService     = "BlobStorageLinkedService"
	DefaultDataLakeLinkedService = "DataLakeLinkedService"
	DefaultSQLLinkedService      = "SQLDatabaseLinkedService"
	DefaultPipeline              = "BlobToDataLakePipeline"
	DefaultUploadContainer       = "mycontainer"
)

// Source describes where a configuration value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnvFile Source = "env-file"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

type attribute struct {
	key         string
	env         string
	description string
	checker     schema.Checker
	secret      bool
}

var attributes = []attribute{
	{key: SubscriptionIDKey, env: "AZURE_SUBSCRIPTION_ID", description: "Azure subscription ID", checker: schema.String()},
	{key: TenantIDKey, env: "AZURE_TENANT_ID", description: "Azure AD tenant ID", checker: schema.String()},
	{key: ClientIDKey, env: "AZURE_CLIENT_ID", description: "service principal application ID", checker: schema.String()},
	{key: ClientSecretKey, env: "AZURE_CLIENT_SECRET", description: "service principal secret", checker: schema.String(), secret: true},
	{key: CloudKey, env: "AZURE_CLOUD", description: "Azure cloud (AzurePublic, AzureChina, AzureGovernment)", checker: schema.String()},
	{key: ResourceGroupKey, env: "RESOURCE_GROUP_NAME", description: "resource group holding the data factory", checker: schema.String()},
	{key: DataFactoryKey, env: "DATA_FACTORY_NAME", description: "data factory name", checker: schema.String()},
	{key: LocationKey, env: "LOCATION", description: "Azure location, e.g. eastus", checker: schema.String()},
	{key: StorageAccountNameKey, env: "STORAGE_ACCOUNT_NAME", description: "storage account backing the data lake linked service", checker: schema.String()},
	{key: StorageAccountAccessKeyKey, env: "STORAGE_ACCOUNT_KEY", description: "access key of storage-account", checker: schema.String(), secret: true},
	{key: StorageAccountResourceGroupKey, env: "STORAGE_ACCOUNT_RESOURCE_GROUP", description: "resource group of the storage accounts, defaults to resource-group", checker: schema.String()},
	{key: BlobLinkedServiceKey, env: "BLOB_STORAGE_LINKED_SERVICE_NAME", description: "blob storage linked service name", checker: schema.String()},
	{key: BlobStorageAccountNameKey, env: "BLOB_STORAGE_ACCOUNT_NAME", description: "storage account backing the blob linked service", checker: schema.String()},
	{key: BlobStorageAccountAccessKeyKey, env: "BLOB_STORAGE_ACCOUNT_KEY", description: "access key of blob-storage-account", checker: schema.String(), secret: true},
	{key: DataLakeLinkedServiceKey, env: "DATA_LAKE_LINKED_SERVICE", description: "data lake linked service name", checker: schema.String()},
	{key: SQLLinkedServiceKey, env: "SQL_LINKED_SERVICE", description: "SQL database linked service name", checker: schema.String()},
	{key: SQLServerKey, env: "SQL_SERVER_NAME", description: "Azure SQL server name, without the domain", checker: schema.String()},
	{key: SQLDatabaseKey, env: "SQL_DATABASE_NAME", description: "Azure SQL database name", checker: schema.String()},
	{key: SQLUserKey, env: "ADMIN_USER", description: "SQL login user", checker: schema.String()},
	{key: SQLPasswordKey, env: "ADMIN_PASSWORD", description: "SQL login password", checker: schema.String(), secret: true},
	{key: BlobContainerKey, env: "BLOB_CONTAINER", description: "source container of the copy pipeline", checker: schema.String()},
	{key: BlobPathKey, env: "BLOB_PATH", description: "source blob path of the copy pipeline", checker: schema.String()},
	{key: DataLakeFileSystemKey, env: "DATA_LAKE_FILE_SYSTEM", description: "sink file system of the copy pipeline", checker: schema.String()},
	{key: DataLakeDirectoryKey, env: "DATA_LAKE_DIRECTORY", description: "sink directory of the copy pipeline", checker: schema.String()},
	{key: PipelineKey, env: "PIPELINE_NAME", description: "copy pipeline name", checker: schema.String()},
	{key: StorageAccountURLKey, env: "STORAGE_ACCOUNT_URL", description: "blob service URL used by upload", checker: schema.String()},
	{key: UploadContainerKey, env: "UPLOAD_CONTAINER", description: "container files are uploaded to", checker: schema.String()},
	{key: CreateResourceGroupKey, env: "CREATE_RESOURCE_GROUP", description: "create resource-group if it does not exist", checker: schema.Bool()},
}

var configDefaults = schema.Defaults{
	CloudKey:                 DefaultCloud,
	BlobLinkedServiceKey:     DefaultBlobLinkedService,
	DataLakeLinkedServiceKey: DefaultDataLakeLinkedService,
	SQLLinkedServiceKey:      DefaultSQLLinkedService,
	PipelineKey:              DefaultPipeline,
	UploadContainerKey:       DefaultUploadContainer,
	CreateResourceGroupKey:   false,
}

var (
	configFields   schema.Fields
	attributeByKey = make(map[string]attribute)
)

func init() {
	configFields = make(schema.Fields)
	for _, attr := range attributes {
		configFields[attr.key] = attr.checker
		attributeByKey[attr.key] = attr
		if _, ok := configDefaults[attr.key]; !ok {
			configDefaults[attr.key] = schema.Omit
		}
	}
}

// Keys returns all known configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(attributes))
	for _, attr := range attributes {
		keys = append(keys, attr.key)
	}
	sort.Strings(keys)
	return keys
}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return attributeByKey[key].env
}

// Description returns the human readable description of key.
func Description(key string) string {
	return attributeByKey[key].description
}

// IsSecret reports whether the value of key must not be displayed.
func IsSecret(key string) bool {
	return attributeByKey[key].secret
}

// LoadParams holds the sources Load reads configuration from.
type LoadParams struct {
	// ConfigFile is an optional YAML file of attributes.
	ConfigFile string

	// EnvFile is an optional dotenv file. When EnvFileOptional is
	// true a missing file is not an error.
	EnvFile         string
	EnvFileOptional bool

	// Getenv looks up environment variables. If nil, os.Getenv is used.
	Getenv func(string) string

	// Overrides are applied last, typically from command line flags.
	Overrides map[string]any
}

// Config holds validated adfctl configuration.
type Config struct {
	attrs   map[string]any
	sources map[string]Source
}

// Load reads the configuration from the sources described by params, in
// increasing precedence: defaults, the YAML file, the dotenv file, the
// environment and finally explicit overrides.
func Load(params LoadParams) (*Config, error) {
	getenv := params.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	attrs := make(map[string]any)
	sources := make(map[string]Source)

	if params.ConfigFile != "" {
		fileAttrs, err := readConfigFile(params.ConfigFile)
		if err != nil {
			return nil, errors.Trace(err)
		}
		for k, v := range fileAttrs {
			attrs[k] = v
			sources[k] = SourceFile
		}
	}

	var dotenv map[string]string
	if params.EnvFile != "" {
		var err error
		dotenv, err = godotenv.Read(params.EnvFile)
		if os.IsNotExist(errors.Cause(err)) && params.EnvFileOptional {
			logger.Debugf("no env file at %q", params.EnvFile)
			err = nil
		}
		if err != nil {
			return nil, errors.Annotatef(err, "reading env file %q", params.EnvFile)
		}
	}

	for _, attr := range attributes {
		if value := getenv(attr.env); value != "" {
			v, err := envValue(attr, value)
			if err != nil {
				return nil, errors.Trace(err)
			}
			attrs[attr.key] = v
			sources[attr.key] = SourceEnv
			continue
		}
		if value, ok := dotenv[attr.env]; ok && value != "" {
			v, err := envValue(attr, value)
			if err != nil {
				return nil, errors.Trace(err)
			}
			attrs[attr.key] = v
			sources[attr.key] = SourceEnvFile
		}
	}

	for k, v := range params.Overrides {
		if _, ok := attributeByKey[k]; !ok {
			return nil, errors.NotValidf("unknown config attribute %q", k)
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		attrs[k] = v
		sources[k] = SourceFlag
	}

	return New(attrs, sources)
}

// New returns a Config built from attrs, which are validated and
// have defaults applied.
func New(attrs map[string]any, sources map[string]Source) (*Config, error) {
	for k := range attrs {
		if _, ok := attributeByKey[k]; !ok {
			return nil, errors.NotValidf("unknown config attribute %q", k)
		}
	}
	checker := schema.FieldMap(configFields, configDefaults)
	coerced, err := checker.Coerce(attrs, nil)
	if err != nil {
		return nil, errors.NewNotValid(err, "invalid configuration")
	}
	cfg := &Config{
		attrs:   coerced.(map[string]any),
		sources: make(map[string]Source),
	}
	for k := range cfg.attrs {
		if src, ok := sources[k]; ok {
			cfg.sources[k] = src
		} else {
			cfg.sources[k] = SourceDefault
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading config file %q", path)
	}
	var attrs map[string]any
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, errors.Annotatef(err, "parsing config file %q", path)
	}
	return attrs, nil
}

func envValue(attr attribute, value string) (any, error) {
	if attr.key != CreateResourceGroupKey {
		return value, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.NotValidf("%s value %q", attr.env, value)
	}
	return b, nil
}

func (c *Config) validate() error {
	if name := c.DataFactory(); name != "" {
		if err := ValidateFactoryName(name); err != nil {
			return errors.Trace(err)
		}
	}
	if name := c.ResourceGroup(); name != "" {
		if err := ValidateResourceGroupName(name); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// nameValidators check the format of attributes that name Azure
// entities. They run only for the attributes a command requires.
var nameValidators = map[string]func(string) error{
	BlobContainerKey:         ValidateContainerName,
	UploadContainerKey:       ValidateContainerName,
	BlobLinkedServiceKey:     ValidateEntityName,
	DataLakeLinkedServiceKey: ValidateEntityName,
	SQLLinkedServiceKey:      ValidateEntityName,
	PipelineKey:              ValidateEntityName,
}

// Require returns an error naming the keys that have no value, or the
// first key whose value is not a valid name.
func (c *Config) Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if v, ok := c.attrs[key]; !ok || fmt.Sprint(v) == "" {
			missing = append(missing, fmt.Sprintf("%q (set %s)", key, EnvVar(key)))
		}
	}
	if len(missing) != 0 {
		return errors.NotValidf("empty value for %s", strings.Join(missing, ", "))
	}
	for _, key := range keys {
		validate, ok := nameValidators[key]
		if !ok {
			continue
		}
		if err := validate(c.str(key)); err != nil {
			return errors.Annotatef(err, "%s", key)
		}
	}
	return nil
}

// Value returns the value for key and whether it is set.
func (c *Config) Value(key string) (any, bool) {
	v, ok := c.attrs[key]
	return v, ok
}

// Source returns where the value for key came from.
func (c *Config) Source(key string) Source {
	return c.sources[key]
}

// AllAttrs returns a copy of the configuration attributes.
func (c *Config) AllAttrs() map[string]any {
	result := make(map[string]any, len(c.attrs))
	for k, v := range c.attrs {
		result[k] = v
	}
	return result
}

// Redacted returns a copy of the attributes with secret values masked.
func (c *Config) Redacted() map[string]any {
	result := c.AllAttrs()
	for k, v := range result {
		if IsSecret(k) && fmt.Sprint(v) != "" {
			result[k] = "********"
		}
	}
	return result
}

func (c *Config) str(key string) string {
	s, _ := c.attrs[key].(string)
	return s
}

// SubscriptionID returns the Azure subscription ID.
func (c *Config) SubscriptionID() string { return c.str(SubscriptionIDKey) }

// TenantID returns the Azure AD tenant ID.
func (c *Config) TenantID() string { return c.str(TenantIDKey) }

// ClientID returns the service principal application ID.
func (c *Config) ClientID() string { return c.str(ClientIDKey) }

// ClientSecret returns the service principal secret.
func (c *Config) ClientSecret() string { return c.str(ClientSecretKey) }

// Cloud returns the name of the Azure cloud.
func (c *Config) Cloud() string { return c.str(CloudKey) }

// ResourceGroup returns the resource group of the data factory.
func (c *Config) ResourceGroup() string { return c.str(ResourceGroupKey) }

// DataFactory returns the data factory name.
func (c *Config) DataFactory() string { return c.str(DataFactoryKey) }

// Location returns the canonicalised location.
func (c *Config) Location() string { return CanonicalLocation(c.str(LocationKey)) }

// StorageAccount returns the storage account used by the data lake
// linked service.
func (c *Config) StorageAccount() string { return c.str(StorageAccountNameKey) }

// StorageAccountKey returns the key of StorageAccount, if configured.
func (c *Config) StorageAccountKey() string { return c.str(StorageAccountAccessKeyKey) }

// StorageAccountResourceGroup returns the resource group holding the
// storage accounts, which defaults to the data factory resource group.
func (c *Config) StorageAccountResourceGroup() string {
	if rg := c.str(StorageAccountResourceGroupKey); rg != "" {
		return rg
	}
	return c.ResourceGroup()
}

// BlobLinkedService returns the blob storage linked service name.
func (c *Config) BlobLinkedService() string { return c.str(BlobLinkedServiceKey) }

// BlobStorageAccount returns the storage account backing the blob linked
// service.
func (c *Config) BlobStorageAccount() string { return c.str(BlobStorageAccountNameKey) }

// BlobStorageAccountKey returns the key of BlobStorageAccount, if configured.
func (c *Config) BlobStorageAccountKey() string { return c.str(BlobStorageAccountAccessKeyKey) }

// DataLakeLinkedService returns the data lake linked service name.
func (c *Config) DataLakeLinkedService() string { return c.str(DataLakeLinkedServiceKey) }

// SQLLinkedService returns the SQL database linked service name.
func (c *Config) SQLLinkedService() string { return c.str(SQLLinkedServiceKey) }

// SQLServer returns the SQL server name.
func (c *Config) SQLServer() string { return c.str(SQLServerKey) }

// SQLDatabase returns the SQL database name.
func (c *Config) SQLDatabase() string { return c.str(SQLDatabaseKey) }

// SQLUser returns the SQL login user.
func (c *Config) SQLUser() string { return c.str(SQLUserKey) }

// SQLPassword returns the SQL login password.
func (c *Config) SQLPassword() string { return c.str(SQLPasswordKey) }

// BlobContainer returns the copy pipeline source container.
func (c *Config) BlobContainer() string { return c.str(BlobContainerKey) }

// BlobPath returns the copy pipeline source blob path.
func (c *Config) BlobPath() string { return c.str(BlobPathKey) }

// DataLakeFileSystem returns the copy pipeline sink file system.
func (c *Config) DataLakeFileSystem() string { return c.str(DataLakeFileSystemKey) }

// DataLakeDirectory returns the copy pipeline sink directory.
func (c *Config) DataLakeDirectory() string { return c.str(DataLakeDirectoryKey) }

// Pipeline returns the copy pipeline name.
func (c *Config) Pipeline() string { return c.str(PipelineKey) }

// StorageAccountURL returns the configured blob service URL, which may be
// empty.
func (c *Config) StorageAccountURL() string { return c.str(StorageAccountURLKey) }

// UploadContainer returns the container files are uploaded to.
func (c *Config) UploadContainer() string { return c.str(UploadContainerKey) }

// CreateResourceGroup reports whether a missing resource group should be
// created.
func (c *Config) CreateResourceGroup() bool {
	b, _ := c.attrs[CreateResourceGroupKey].(bool)
	return b
}
