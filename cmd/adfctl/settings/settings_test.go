// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package settings_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd/mocks"
	"github.com/canonical/adfctl/cmd/adfctl/settings"
	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/cmd/cmdtesting"
)

type settingsSuite struct {
	jujutesting.IsolationSuite
}

var _ = gc.Suite(&settingsSuite{})

func lines(out string) []string {
	var result []string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			result = append(result, strings.Join(fields, " "))
		}
	}
	return result
}

func (s *settingsSuite) TestShowConfigTabular(c *gc.C) {
	ctx := cmdtesting.ContextWithEnv(c, map[string]string{
		"RESOURCE_GROUP_NAME": "my-rg",
		"ADMIN_PASSWORD":      "s3cret",
	})
	err := os.WriteFile(filepath.Join(ctx.Dir, ".env"), []byte("DATA_FACTORY_NAME=my-factory\n"), 0600)
	c.Assert(err, jc.ErrorIsNil)

	_, err = cmdtesting.RunCommandInContext(ctx, settings.NewShowConfigCommand(), "--data-factory", "flag-factory")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(lines(cmdtesting.Stdout(ctx)), jc.DeepEquals, []string{
		"Attribute Value Source Environment",
		"blob-linked-service BlobStorageLinkedService default BLOB_STORAGE_LINKED_SERVICE_NAME",
		"cloud AzurePublic default AZURE_CLOUD",
		"create-resource-group false default CREATE_RESOURCE_GROUP",
		"data-factory flag-factory flag DATA_FACTORY_NAME",
		"data-lake-linked-service DataLakeLinkedService default DATA_LAKE_LINKED_SERVICE",
		"pipeline BlobToDataLakePipeline default PIPELINE_NAME",
		"resource-group my-rg env RESOURCE_GROUP_NAME",
		"sql-linked-service SQLDatabaseLinkedService default SQL_LINKED_SERVICE",
		"sql-password ******** env ADMIN_PASSWORD",
		"upload-container mycontainer default UPLOAD_CONTAINER",
	})
}

func (s *settingsSuite) TestShowConfigAll(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, settings.NewShowConfigCommand(), "--all")
	c.Assert(err, jc.ErrorIsNil)
	out := lines(cmdtesting.Stdout(ctx))
	c.Check(out, gc.HasLen, 29)
	c.Check(strings.Join(out, "\n"), jc.Contains, "subscription-id - AZURE_SUBSCRIPTION_ID")
}

func (s *settingsSuite) TestShowConfigJSON(c *gc.C) {
	ctx := cmdtesting.ContextWithEnv(c, map[string]string{
		"AZURE_CLIENT_SECRET": "very-secret",
		"DATA_FACTORY_NAME":   "my-factory",
	})
	_, err := cmdtesting.RunCommandInContext(ctx, settings.NewShowConfigCommand(), "--format", "json")
	c.Assert(err, jc.ErrorIsNil)

	var attrs map[string]any
	err = json.Unmarshal([]byte(cmdtesting.Stdout(ctx)), &attrs)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(attrs["client-secret"], gc.Equals, "********")
	c.Check(attrs["data-factory"], gc.Equals, "my-factory")
	c.Check(cmdtesting.Stdout(ctx), gc.Not(jc.Contains), "very-secret")
}

func (s *settingsSuite) TestShowConfigBadEnvValue(c *gc.C) {
	ctx := cmdtesting.ContextWithEnv(c, map[string]string{"CREATE_RESOURCE_GROUP": "maybe"})
	_, err := cmdtesting.RunCommandInContext(ctx, settings.NewShowConfigCommand())
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *settingsSuite) TestVerifyCredentials(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	apis := mocks.NewMockAPIFactory(ctrl)
	sub := mocks.NewMockSubscriptionAPI(ctrl)
	apis.EXPECT().Subscription(gomock.Any()).Return(sub, nil)
	sub.EXPECT().VerifySubscription(gomock.Any()).Return(azure.Subscription{
		ID:          "sub-id",
		DisplayName: "Analytics",
		State:       "Enabled",
	}, nil)

	ctx, err := cmdtesting.RunCommand(c, settings.NewVerifyCredentialsCommandForTest(apis))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "Credentials verified for subscription \"Analytics\" (sub-id), state Enabled.\n")
}

func (s *settingsSuite) TestVerifyCredentialsRejected(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	apis := mocks.NewMockAPIFactory(ctrl)
	sub := mocks.NewMockSubscriptionAPI(ctrl)
	apis.EXPECT().Subscription(gomock.Any()).Return(sub, nil)
	sub.EXPECT().VerifySubscription(gomock.Any()).Return(azure.Subscription{}, errors.Unauthorizedf("token expired"))

	_, err := cmdtesting.RunCommand(c, settings.NewVerifyCredentialsCommandForTest(apis))
	c.Assert(err, jc.ErrorIs, errors.Unauthorized)
	c.Assert(err, gc.ErrorMatches, "credential rejected: token expired")
}

func (s *settingsSuite) TestVerifyCredentialsNoSubscription(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()
	apis := mocks.NewMockAPIFactory(ctrl)
	apis.EXPECT().Subscription(gomock.Any()).Return(nil, errors.NotValidf("empty value for %q", "subscription-id"))

	_, err := cmdtesting.RunCommand(c, settings.NewVerifyCredentialsCommandForTest(apis))
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}
