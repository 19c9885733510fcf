// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config

import (
	"regexp"
	"strings"

	"github.com/juju/errors"
)

var (
	factoryNameRegexp       = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)
	containerNameRegexp     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	resourceGroupNameRegexp = regexp.MustCompile(`^[-\w._()]+$`)
)

// entityNameInvalidChars are the characters Data Factory rejects in linked
// service, dataset and pipeline names.
const entityNameInvalidChars = `.+?/<>*%&:\`

// ValidateFactoryName checks that name is a valid data factory name:
// 3 to 63 letters, digits or hyphens, starting and ending with a letter
// or digit and without consecutive hyphens.
func ValidateFactoryName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return errors.NotValidf("data factory name %q (must be 3 to 63 characters)", name)
	}
	if !factoryNameRegexp.MatchString(name) {
		return errors.NotValidf("data factory name %q", name)
	}
	return nil
}

// ValidateContainerName checks that name is a valid blob container name.
func ValidateContainerName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return errors.NotValidf("container name %q (must be 3 to 63 characters)", name)
	}
	if !containerNameRegexp.MatchString(name) {
		return errors.NotValidf("container name %q (lowercase letters, digits and single hyphens only)", name)
	}
	return nil
}

// ValidateResourceGroupName checks that name is a valid resource group name.
func ValidateResourceGroupName(name string) error {
	if len(name) == 0 || len(name) > 90 {
		return errors.NotValidf("resource group name %q (must be 1 to 90 characters)", name)
	}
	if !resourceGroupNameRegexp.MatchString(name) || strings.HasSuffix(name, ".") {
		return errors.NotValidf("resource group name %q", name)
	}
	return nil
}

// ValidateEntityName checks that name is usable as the name of a linked
// service, dataset or pipeline.
func ValidateEntityName(name string) error {
	if name == "" {
		return errors.NotValidf("empty name")
	}
	if len(name) > 260 {
		return errors.NotValidf("name %q (longer than 260 characters)", name)
	}
	if strings.ContainsAny(name, entityNameInvalidChars) {
		return errors.NotValidf("name %q (contains one of %q)", name, entityNameInvalidChars)
	}
	return nil
}

// CanonicalLocation returns the canonicalized location string. This involves
// stripping whitespace, and lowercasing. The ARM APIs do not support
// embedded whitespace, whereas the old Service Management APIs used to.
func CanonicalLocation(s string) string {
	s = strings.Replace(s, " ", "", -1)
	return strings.ToLower(s)
}
