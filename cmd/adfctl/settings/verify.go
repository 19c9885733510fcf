// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package settings

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/canonical/adfctl/cmd/adfctl/adfcmd"
	"github.com/canonical/adfctl/internal/cmd"
)

const verifyCredentialsDoc = `
Check that the configured credential can read the configured subscription.
Nothing is created or changed.

A service principal is used when AZURE_TENANT_ID, AZURE_CLIENT_ID and
AZURE_CLIENT_SECRET are all set; otherwise the default Azure credential
chain (environment, managed identity, Azure CLI) is used.
`

// NewVerifyCredentialsCommand returns a command that checks the
// configured credential.
func NewVerifyCredentialsCommand() cmd.Command {
	return &verifyCredentialsCommand{CommandBase: adfcmd.NewCommandBase(nil)}
}

type verifyCredentialsCommand struct {
	adfcmd.CommandBase
}

// Info implements cmd.Command.
func (c *verifyCredentialsCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "verify-credentials",
		Purpose: "Check access to the configured subscription.",
		Doc:     verifyCredentialsDoc,
	}
}

// Run implements cmd.Command.
func (c *verifyCredentialsCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.LoadConfig(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	api, err := c.APIFactory().Subscription(cfg)
	if err != nil {
		return errors.Trace(err)
	}
	sub, err := api.VerifySubscription(ctx)
	if err != nil {
		if errors.Is(err, errors.Unauthorized) {
			return errors.Annotate(err, "credential rejected")
		}
		return errors.Trace(err)
	}
	name := sub.DisplayName
	if name == "" {
		name = sub.ID
	}
	fmt.Fprintf(ctx.Stdout, "Credentials verified for subscription %q (%s), state %s.\n", name, sub.ID, sub.State)
	return nil
}
