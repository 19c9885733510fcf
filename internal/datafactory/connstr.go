// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package datafactory

import (
	"fmt"

	"github.com/juju/errors"
)

// StorageAccount identifies a storage account and one of its access keys.
type StorageAccount struct {
	Name string
	Key  string
}

// Validate checks that both name and key are set.
func (a StorageAccount) Validate() error {
	if a.Name == "" {
		return errors.NotValidf("empty storage account name")
	}
	if a.Key == "" {
		return errors.NotValidf("empty key for storage account %q", a.Name)
	}
	return nil
}

// SQLDatabase identifies an Azure SQL database and the login used by the
// linked service.
type SQLDatabase struct {
	Server   string
	Database string
	User     string
	Password string
}

// Validate checks that every field is set.
func (d SQLDatabase) Validate() error {
	switch {
	case d.Server == "":
		return errors.NotValidf("empty SQL server name")
	case d.Database == "":
		return errors.NotValidf("empty SQL database name")
	case d.User == "":
		return errors.NotValidf("empty SQL user")
	case d.Password == "":
		return errors.NotValidf("empty SQL password")
	}
	return nil
}

// BlobConnectionString returns the connection string of a storage account
// in the cloud with the given storage endpoint suffix.
func BlobConnectionString(account StorageAccount, endpointSuffix string) string {
	return fmt.Sprintf(
		"DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=%s",
		account.Name, account.Key, endpointSuffix,
	)
}

// SQLConnectionString returns the ADO.NET connection string of an Azure
// SQL database.
func SQLConnectionString(db SQLDatabase, serverSuffix string) string {
	return fmt.Sprintf(
		"Server=tcp:%s.%s,1433;Initial Catalog=%s;User ID=%s;Password=%s;Encrypt=true;Connection Timeout=30;",
		db.Server, serverSuffix, db.Database, db.User, db.Password,
	)
}
