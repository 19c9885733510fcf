// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/juju/errors"

	"github.com/canonical/adfctl/internal/azure/errorutils"
)

// SubscriptionsClient is the part of the subscriptions API used to
// verify credentials.
type SubscriptionsClient interface {
	Get(ctx context.Context, subscriptionID string, options *armsubscriptions.ClientGetOptions) (armsubscriptions.ClientGetResponse, error)
}

// Subscription describes the subscription a credential has access to.
type Subscription struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display-name" yaml:"display-name"`
	State       string `json:"state" yaml:"state"`
}

// VerifySubscription checks that the credential behind client can read
// the subscription, and that the subscription is usable.
func VerifySubscription(ctx context.Context, client SubscriptionsClient, subscriptionID string) (Subscription, error) {
	resp, err := client.Get(ctx, subscriptionID, nil)
	if err != nil {
		err = errorutils.HandleCredentialError(err)
		if errorutils.IsNotFoundError(err) {
			return Subscription{}, errors.NotFoundf("subscription %q", subscriptionID)
		}
		return Subscription{}, errors.Annotatef(err, "getting subscription %q", subscriptionID)
	}
	sub := Subscription{
		ID:          toValue(resp.SubscriptionID),
		DisplayName: toValue(resp.DisplayName),
	}
	if resp.State != nil {
		sub.State = string(*resp.State)
	}
	if sub.ID == "" {
		sub.ID = subscriptionID
	}
	if resp.State != nil && (*resp.State == armsubscriptions.SubscriptionStateDisabled || *resp.State == armsubscriptions.SubscriptionStateDeleted) {
		return sub, errors.NotValidf("subscription %q in state %q", subscriptionID, sub.State)
	}
	return sub, nil
}
