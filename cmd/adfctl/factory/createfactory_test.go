// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package factory_test

import (
	"net/http"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd/mocks"
	"github.com/canonical/adfctl/cmd/adfctl/factory"
	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/azure/azuretesting"
	"github.com/canonical/adfctl/internal/cmd/cmdtesting"
	"github.com/canonical/adfctl/internal/datafactory"
)

type createFactorySuite struct {
	baseSuite
}

var _ = gc.Suite(&createFactorySuite{})

var factoryInfo = datafactory.FactoryInfo{
	Name:          factoryName,
	ResourceGroup: resourceGroup,
	Location:      "eastus",
}

func (s *createFactorySuite) TestCreateFactory(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().CreateFactory(gomock.Any(), "eastus", nil).Return(factoryInfo, nil)

	ctx, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIsNil)
	s.assertStdout(c, ctx, "Data Factory \"my-factory\" created successfully in resource group \"my-rg\".\n")
}

func (s *createFactorySuite) TestCreateFactoryLocationAndTags(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().CreateFactory(gomock.Any(), "westeurope", map[string]string{
		"env":   "dev",
		"owner": "data",
	}).Return(factoryInfo, nil)

	_, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis),
		"--location", "West Europe", "--tags", "env=dev, owner=data")
	c.Assert(err, jc.ErrorIsNil)
}

func (s *createFactorySuite) TestCreateFactoryBadTags(c *gc.C) {
	err := cmdtesting.InitCommand(factory.NewCreateFactoryCommandForTest(nil), []string{"--tags", "env"})
	c.Assert(err, gc.ErrorMatches, `parsing tags: .*`)
}

func (s *createFactorySuite) TestCreateFactoryNoLocation(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	delete(s.env, "LOCATION")

	_, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIs, errors.NotValid)
	c.Assert(err, gc.ErrorMatches, `empty value for "location" \(set LOCATION\) not valid`)
}

func (s *createFactorySuite) TestCreateFactoryWithResourceGroup(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	groups := mocks.NewMockResourceGroupAPI(s.ctrl)
	s.apis.EXPECT().ResourceGroups(gomock.Any()).Return(groups, nil)
	groups.EXPECT().EnsureResourceGroup(gomock.Any(), azure.EnsureResourceGroupParams{
		Name:     resourceGroup,
		Location: "eastus",
		Create:   true,
	}).Return(true, nil)
	s.api.EXPECT().CreateFactory(gomock.Any(), "eastus", nil).Return(factoryInfo, nil)

	ctx, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis), "--create-resource-group")
	c.Assert(err, jc.ErrorIsNil)
	s.assertStdout(c, ctx, ""+
		"Resource group \"my-rg\" created successfully in \"eastus\".\n"+
		"Data Factory \"my-factory\" created successfully in resource group \"my-rg\".\n")
}

func (s *createFactorySuite) TestCreateFactoryResourceGroupFromEnv(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.env["CREATE_RESOURCE_GROUP"] = "true"
	s.expectDataFactory()
	groups := mocks.NewMockResourceGroupAPI(s.ctrl)
	s.apis.EXPECT().ResourceGroups(gomock.Any()).Return(groups, nil)
	groups.EXPECT().EnsureResourceGroup(gomock.Any(), gomock.Any()).Return(false, nil)
	s.api.EXPECT().CreateFactory(gomock.Any(), "eastus", nil).Return(factoryInfo, nil)

	ctx, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), jc.Contains, "Resource group \"my-rg\" already exists.\n")
}

func (s *createFactorySuite) TestCreateFactoryError(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.expectDataFactory()
	s.api.EXPECT().CreateFactory(gomock.Any(), "eastus", nil).Return(
		datafactory.FactoryInfo{}, errors.Annotate(azuretesting.ResponseError(http.StatusConflict, "DataFactoryNameInUse"), `creating data factory "my-factory"`))

	ctx, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis))
	c.Assert(err, gc.ErrorMatches, `(?s)creating data factory "my-factory": .*DataFactoryNameInUse.*`)
	s.assertStdout(c, ctx, "")
}

func (s *createFactorySuite) TestCreateFactoryConfigError(c *gc.C) {
	defer s.setupMocks(c).Finish()
	s.apis.EXPECT().DataFactory(gomock.Any()).Return(nil, errors.NotValidf("empty value for %q", "subscription-id"))

	_, err := s.run(c, factory.NewCreateFactoryCommandForTest(s.apis))
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *createFactorySuite) TestCreateFactoryInvalidFactoryName(c *gc.C) {
	s.env["DATA_FACTORY_NAME"] = "-bad-"
	_, err := s.run(c, factory.NewCreateFactoryCommandForTest(nil))
	c.Assert(err, gc.ErrorMatches, `loading configuration: .*data factory name "-bad-" not valid`)
}
