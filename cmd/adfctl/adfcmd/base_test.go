// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package adfcmd_test

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/azure"
	"github.com/canonical/adfctl/internal/cmd/cmdtesting"
	"github.com/canonical/adfctl/internal/config"
)

type baseSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&baseSuite{})

func (s *baseSuite) parse(c *gc.C, base *adfcmd.CommandBase, args ...string) {
	f := cmdtesting.NewFlagSet()
	base.SetFlags(f)
	c.Assert(f.Parse(true, args), jc.ErrorIsNil)
}

func (s *baseSuite) TestLoadConfigDefaultEnvFileOptional(c *gc.C) {
	base := adfcmd.NewCommandBase(nil)
	s.parse(c, &base)
	ctx := cmdtesting.ContextWithEnv(c, map[string]string{"RESOURCE_GROUP_NAME": "env-rg"})

	cfg, err := base.LoadConfig(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.ResourceGroup(), gc.Equals, "env-rg")
	c.Check(cfg.Source(config.ResourceGroupKey), gc.Equals, config.SourceEnv)
}

func (s *baseSuite) TestLoadConfigReadsDefaultEnvFile(c *gc.C) {
	base := adfcmd.NewCommandBase(nil)
	s.parse(c, &base)
	ctx := cmdtesting.Context(c)
	err := os.WriteFile(filepath.Join(ctx.Dir, ".env"), []byte("DATA_FACTORY_NAME=dotenv-factory\n"), 0600)
	c.Assert(err, jc.ErrorIsNil)

	cfg, err := base.LoadConfig(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.DataFactory(), gc.Equals, "dotenv-factory")
	c.Check(cfg.Source(config.DataFactoryKey), gc.Equals, config.SourceEnvFile)
}

func (s *baseSuite) TestLoadConfigExplicitEnvFileMissing(c *gc.C) {
	base := adfcmd.NewCommandBase(nil)
	s.parse(c, &base, "--env-file", "missing.env")

	_, err := base.LoadConfig(cmdtesting.Context(c))
	c.Assert(err, gc.ErrorMatches, `loading configuration: reading env file .*missing.env.*`)
}

func (s *baseSuite) TestLoadConfigFlagsOverride(c *gc.C) {
	base := adfcmd.NewCommandBase(nil)
	s.parse(c, &base, "-g", "flag-rg", "--data-factory", "flag-factory")
	base.Override(config.LocationKey, "West Europe")
	ctx := cmdtesting.ContextWithEnv(c, map[string]string{
		"RESOURCE_GROUP_NAME": "env-rg",
		"DATA_FACTORY_NAME":   "env-factory",
	})

	cfg, err := base.LoadConfig(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.ResourceGroup(), gc.Equals, "flag-rg")
	c.Check(cfg.DataFactory(), gc.Equals, "flag-factory")
	c.Check(cfg.Location(), gc.Equals, "westeurope")
	c.Check(cfg.Source(config.DataFactoryKey), gc.Equals, config.SourceFlag)
}

func (s *baseSuite) TestLoadConfigFile(c *gc.C) {
	base := adfcmd.NewCommandBase(nil)
	s.parse(c, &base, "--config", "adf.yaml")
	ctx := cmdtesting.Context(c)
	err := os.WriteFile(filepath.Join(ctx.Dir, "adf.yaml"), []byte("pipeline: CopyOrders\n"), 0600)
	c.Assert(err, jc.ErrorIsNil)

	cfg, err := base.LoadConfig(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.Pipeline(), gc.Equals, "CopyOrders")
}

func (s *baseSuite) newConfig(c *gc.C, attrs map[string]any) *config.Config {
	cfg, err := config.New(attrs, nil)
	c.Assert(err, jc.ErrorIsNil)
	return cfg
}

func (s *baseSuite) cloud(c *gc.C, name string) azure.Cloud {
	cloud, err := azure.LookupCloud(name)
	c.Assert(err, jc.ErrorIsNil)
	return cloud
}

func (s *baseSuite) TestResolveBlobTargetPrefersBlobAccount(c *gc.C) {
	cfg := s.newConfig(c, map[string]any{
		config.BlobStorageAccountNameKey:      "blobacct",
		config.BlobStorageAccountAccessKeyKey: "blob-key",
		config.StorageAccountNameKey:          "lakeacct",
		config.StorageAccountAccessKeyKey:     "lake-key",
	})
	target, err := adfcmd.ResolveBlobTarget(cfg, s.cloud(c, "AzurePublic"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(target, jc.DeepEquals, adfcmd.BlobTarget{
		URL:     "https://blobacct.blob.core.windows.net/",
		Account: "blobacct",
		Key:     "blob-key",
	})
}

func (s *baseSuite) TestResolveBlobTargetFallsBackToStorageAccount(c *gc.C) {
	cfg := s.newConfig(c, map[string]any{
		config.StorageAccountNameKey: "lakeacct",
	})
	target, err := adfcmd.ResolveBlobTarget(cfg, s.cloud(c, "AzureChina"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(target.URL, gc.Equals, "https://lakeacct.blob.core.chinacloudapi.cn/")
	c.Check(target.Key, gc.Equals, "")
}

func (s *baseSuite) TestResolveBlobTargetExplicitURL(c *gc.C) {
	cfg := s.newConfig(c, map[string]any{
		config.StorageAccountURLKey: "https://custom.example.com/",
	})
	target, err := adfcmd.ResolveBlobTarget(cfg, s.cloud(c, "AzurePublic"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(target, jc.DeepEquals, adfcmd.BlobTarget{URL: "https://custom.example.com/"})
}

func (s *baseSuite) TestResolveBlobTargetNoAccount(c *gc.C) {
	cfg := s.newConfig(c, map[string]any{})
	_, err := adfcmd.ResolveBlobTarget(cfg, s.cloud(c, "AzurePublic"))
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *baseSuite) TestPrintStatusWithoutTerminal(c *gc.C) {
	var buf bytes.Buffer
	w := adfcmd.NewStatusWriter(&buf)
	adfcmd.PrintStatus(w, adfcmd.StatusFailed, "%s: %s", "factory", "boom")
	c.Check(buf.String(), gc.Equals, "FAILED factory: boom\n")
}
