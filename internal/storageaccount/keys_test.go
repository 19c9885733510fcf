// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package storageaccount_test

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/azure/azuretesting"
	"github.com/canonical/adfctl/internal/storageaccount"
)

type keysSuite struct {
	testing.IsolationSuite

	client *MockAccountsClient
}

var _ = gc.Suite(&keysSuite{})

func (s *keysSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.client = NewMockAccountsClient(ctrl)
	return ctrl
}

func (s *keysSuite) resolver() *storageaccount.KeyResolver {
	return storageaccount.NewKeyResolver(s.client, azure.BackoffCaller{
		Clock: testclock.NewDilatedWallClock(10 * time.Millisecond),
	})
}

func keys(keys ...*armstorage.AccountKey) armstorage.AccountsClientListKeysResponse {
	return armstorage.AccountsClientListKeysResponse{
		AccountListKeysResult: armstorage.AccountListKeysResult{Keys: keys},
	}
}

func (s *keysSuite) TestResolveKey(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.client.EXPECT().ListKeys(gomock.Any(), "rg", "acct", nil).Return(keys(
		&armstorage.AccountKey{KeyName: to.Ptr("key0"), Permissions: to.Ptr(armstorage.KeyPermissionRead), Value: to.Ptr("read-only")},
		&armstorage.AccountKey{KeyName: to.Ptr("key1"), Permissions: to.Ptr(armstorage.KeyPermissionFull), Value: to.Ptr("full")},
		&armstorage.AccountKey{KeyName: to.Ptr("key2"), Permissions: to.Ptr(armstorage.KeyPermissionFull), Value: to.Ptr("other")},
	), nil)

	key, err := s.resolver().ResolveKey(context.Background(), "rg", "acct")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(key, gc.Equals, "full")
}

func (s *keysSuite) TestResolveKeyNoFullKey(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.client.EXPECT().ListKeys(gomock.Any(), "rg", "acct", nil).Return(keys(
		&armstorage.AccountKey{Permissions: to.Ptr(armstorage.KeyPermissionRead), Value: to.Ptr("read-only")},
		nil,
	), nil)

	_, err := s.resolver().ResolveKey(context.Background(), "rg", "acct")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *keysSuite) TestResolveKeyAccountNotFound(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.client.EXPECT().ListKeys(gomock.Any(), "rg", "acct", nil).Return(
		armstorage.AccountsClientListKeysResponse{}, azuretesting.ResponseError(http.StatusNotFound, "ResourceNotFound"))

	_, err := s.resolver().ResolveKey(context.Background(), "rg", "acct")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
	c.Assert(err, gc.ErrorMatches, `storage account "acct" in resource group "rg" not found`)
}

func (s *keysSuite) TestResolveKeyForbidden(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.client.EXPECT().ListKeys(gomock.Any(), "rg", "acct", nil).Return(
		armstorage.AccountsClientListKeysResponse{}, azuretesting.ResponseError(http.StatusForbidden, "AuthorizationFailed"))

	_, err := s.resolver().ResolveKey(context.Background(), "rg", "acct")
	c.Assert(err, jc.ErrorIs, errors.Unauthorized)
}

func (s *keysSuite) TestResolveKeyNeedsNames(c *gc.C) {
	defer s.setupMocks(c).Finish()

	_, err := s.resolver().ResolveKey(context.Background(), "", "acct")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}
