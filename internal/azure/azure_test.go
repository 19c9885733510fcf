// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azure_test

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/azure/azuretesting"
	"github.com/canonical/adfctl/internal/azure/errorutils"
)

type azureSuite struct {
	testing.IsolationSuite

	resourceGroups *MockResourceGroupsClient
	subscriptions  *MockSubscriptionsClient
}

var _ = gc.Suite(&azureSuite{})

func (s *azureSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.resourceGroups = NewMockResourceGroupsClient(ctrl)
	s.subscriptions = NewMockSubscriptionsClient(ctrl)
	return ctrl
}

func (s *azureSuite) TestLookupCloud(c *gc.C) {
	public, err := azure.LookupCloud("azurepublic")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(public.Name, gc.Equals, "AzurePublic")
	c.Check(public.Configuration, jc.DeepEquals, cloud.AzurePublic)
	c.Check(public.BlobServiceURL("acct"), gc.Equals, "https://acct.blob.core.windows.net/")

	china, err := azure.LookupCloud("AzureChina")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(china.SQLServerSuffix, gc.Equals, "database.chinacloudapi.cn")
	c.Check(china.ClientOptions().Cloud, jc.DeepEquals, cloud.AzureChina)

	_, err = azure.LookupCloud("AzureStack")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *azureSuite) TestCredentialParams(c *gc.C) {
	p := azure.CredentialParams{TenantID: "tenant", ClientID: "client", ClientSecret: "secret"}
	c.Check(p.HasServicePrincipal(), jc.IsTrue)
	p.TenantID = ""
	c.Check(p.HasServicePrincipal(), jc.IsFalse)
}

func (s *azureSuite) TestNewCredentialSecretWithoutClient(c *gc.C) {
	_, err := azure.NewCredential(azure.CredentialParams{ClientSecret: "secret"})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	c.Assert(err, gc.ErrorMatches, "client-secret without tenant-id and client-id not valid")
}

func (s *azureSuite) TestNewCredentialManagedIdentityClient(c *gc.C) {
	cred, err := azure.NewCredential(azure.CredentialParams{
		Cloud:    azure.Cloud{Configuration: cloud.AzurePublic},
		TenantID: "00000000-0000-0000-0000-000000000001",
		ClientID: "00000000-0000-0000-0000-000000000011",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(cred, gc.NotNil)

	cred, err = azure.NewCredential(azure.CredentialParams{
		Cloud:    azure.Cloud{Configuration: cloud.AzurePublic},
		ClientID: "00000000-0000-0000-0000-000000000011",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(cred, gc.NotNil)
}

func (s *azureSuite) TestNewCredentialServicePrincipal(c *gc.C) {
	cred, err := azure.NewCredential(azure.CredentialParams{
		Cloud:        azure.Cloud{Configuration: cloud.AzurePublic},
		TenantID:     "00000000-0000-0000-0000-000000000001",
		ClientID:     "client",
		ClientSecret: "secret",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(cred, gc.NotNil)
}

func (s *azureSuite) TestVerifySubscription(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.subscriptions.EXPECT().Get(gomock.Any(), "sub-id", nil).Return(armsubscriptions.ClientGetResponse{
		Subscription: armsubscriptions.Subscription{
			SubscriptionID: to.Ptr("sub-id"),
			DisplayName:    to.Ptr("Pay-As-You-Go"),
			State:          to.Ptr(armsubscriptions.SubscriptionStateEnabled),
		},
	}, nil)

	sub, err := azure.VerifySubscription(context.Background(), s.subscriptions, "sub-id")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(sub, jc.DeepEquals, azure.Subscription{
		ID:          "sub-id",
		DisplayName: "Pay-As-You-Go",
		State:       "Enabled",
	})
}

func (s *azureSuite) TestVerifySubscriptionDisabled(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.subscriptions.EXPECT().Get(gomock.Any(), "sub-id", nil).Return(armsubscriptions.ClientGetResponse{
		Subscription: armsubscriptions.Subscription{
			State: to.Ptr(armsubscriptions.SubscriptionStateDisabled),
		},
	}, nil)

	_, err := azure.VerifySubscription(context.Background(), s.subscriptions, "sub-id")
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *azureSuite) TestVerifySubscriptionUnauthorized(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.subscriptions.EXPECT().Get(gomock.Any(), "sub-id", nil).Return(
		armsubscriptions.ClientGetResponse{}, azuretesting.ResponseError(http.StatusUnauthorized, "InvalidAuthenticationToken"))

	_, err := azure.VerifySubscription(context.Background(), s.subscriptions, "sub-id")
	c.Assert(err, jc.ErrorIs, errors.Unauthorized)
}

func (s *azureSuite) TestVerifySubscriptionNotFound(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.subscriptions.EXPECT().Get(gomock.Any(), "sub-id", nil).Return(
		armsubscriptions.ClientGetResponse{}, azuretesting.ResponseError(http.StatusNotFound, "SubscriptionNotFound"))

	_, err := azure.VerifySubscription(context.Background(), s.subscriptions, "sub-id")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *azureSuite) TestEnsureResourceGroupExists(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resourceGroups.EXPECT().CheckExistence(gomock.Any(), "rg", nil).Return(
		armresources.ResourceGroupsClientCheckExistenceResponse{Success: true}, nil)

	created, err := azure.EnsureResourceGroup(context.Background(), s.resourceGroups, azure.EnsureResourceGroupParams{
		Name: "rg", Create: true, Location: "eastus",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(created, jc.IsFalse)
}

func (s *azureSuite) TestEnsureResourceGroupMissing(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resourceGroups.EXPECT().CheckExistence(gomock.Any(), "rg", nil).Return(
		armresources.ResourceGroupsClientCheckExistenceResponse{}, nil)

	_, err := azure.EnsureResourceGroup(context.Background(), s.resourceGroups, azure.EnsureResourceGroupParams{Name: "rg"})
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *azureSuite) TestEnsureResourceGroupCreates(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.resourceGroups.EXPECT().CheckExistence(gomock.Any(), "rg", nil).Return(
			armresources.ResourceGroupsClientCheckExistenceResponse{}, nil),
		s.resourceGroups.EXPECT().CreateOrUpdate(gomock.Any(), "rg", armresources.ResourceGroup{
			Location: to.Ptr("eastus"),
			Tags:     map[string]*string{"created-by": to.Ptr("adfctl")},
		}, nil).Return(armresources.ResourceGroupsClientCreateOrUpdateResponse{}, nil),
	)

	created, err := azure.EnsureResourceGroup(context.Background(), s.resourceGroups, azure.EnsureResourceGroupParams{
		Name:     "rg",
		Location: "eastus",
		Tags:     map[string]string{"created-by": "adfctl"},
		Create:   true,
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(created, jc.IsTrue)
}

func (s *azureSuite) TestEnsureResourceGroupCreateNeedsLocation(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resourceGroups.EXPECT().CheckExistence(gomock.Any(), "rg", nil).Return(
		armresources.ResourceGroupsClientCheckExistenceResponse{}, nil)

	_, err := azure.EnsureResourceGroup(context.Background(), s.resourceGroups, azure.EnsureResourceGroupParams{
		Name: "rg", Create: true,
	})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *azureSuite) TestBackoffCallerRetriesThrottled(c *gc.C) {
	caller := azure.BackoffCaller{Clock: testclock.NewDilatedWallClock(10 * time.Millisecond)}
	attempts := 0
	err := caller.Call(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return azuretesting.ResponseError(http.StatusTooManyRequests, "TooManyRequests")
		}
		return nil
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(attempts, gc.Equals, 3)
}

func (s *azureSuite) TestBackoffCallerFatal(c *gc.C) {
	caller := azure.BackoffCaller{Clock: testclock.NewDilatedWallClock(10 * time.Millisecond)}
	attempts := 0
	err := caller.Call(context.Background(), func() error {
		attempts++
		return errors.New("boom")
	})
	c.Assert(err, gc.ErrorMatches, "boom")
	c.Check(attempts, gc.Equals, 1)
}

func (s *azureSuite) TestBackoffCallerKeepsResponseError(c *gc.C) {
	caller := azure.BackoffCaller{Clock: testclock.NewDilatedWallClock(10 * time.Millisecond)}
	err := caller.Call(context.Background(), func() error {
		return azuretesting.ResponseError(http.StatusNotFound, "ResourceNotFound")
	})
	c.Assert(err, gc.NotNil)
	c.Check(errorutils.IsNotFoundError(err), jc.IsTrue)
	c.Check(errorutils.ErrorCode(err), gc.Equals, "ResourceNotFound")
	c.Check(errorutils.Message(err), gc.Equals, "ResourceNotFound (Not Found)")
}

func (s *azureSuite) TestBackoffCallerStoppedReturnsLastError(c *gc.C) {
	ctx, cancel := context.WithCancel(context.Background())
	caller := azure.BackoffCaller{Clock: testclock.NewDilatedWallClock(10 * time.Millisecond)}
	err := caller.Call(ctx, func() error {
		cancel()
		return azuretesting.ResponseError(http.StatusTooManyRequests, "TooManyRequests")
	})
	c.Assert(err, gc.NotNil)
	c.Check(errorutils.IsTooManyRequests(err), jc.IsTrue)
}
