// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package azure holds the pieces shared by every Azure client adfctl
// builds: cloud endpoints, credentials, throttling retries and a few
// subscription level checks.
package azure

import (
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("adfctl.azure")

func toValue[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func toPtr[T any](v T) *T {
	return &v
}

func toTags(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	result := make(map[string]*string, len(tags))
	for k, v := range tags {
		result[k] = toPtr(v)
	}
	return result
}
