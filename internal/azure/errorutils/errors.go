// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package errorutils

import (
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("adfctl.azure.errorutils")

// StatusCode returns the HTTP status code of the Azure response error
// wrapped by err, or 0 if there is none.
func StatusCode(err error) int {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// ErrorCode returns the Azure error code of the response error wrapped
// by err, or "" if there is none.
func ErrorCode(err error) string {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.ErrorCode
	}
	return ""
}

// IsNotFoundError returns true if the error is
// caused by a not found error.
func IsNotFoundError(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsConflictError returns true if the error is
// caused by a conflict error.
func IsConflictError(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// IsForbiddenError returns true if the error is
// caused by a forbidden error.
func IsForbiddenError(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsTooManyRequests returns true if the request was throttled.
func IsTooManyRequests(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// IsAuthorisationFailure returns true if err is the result of the
// credential being rejected, either by the identity platform or by
// Azure Resource Manager.
func IsAuthorisationFailure(err error) bool {
	if err == nil {
		return false
	}
	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return true
	}
	switch StatusCode(err) {
	case http.StatusUnauthorized:
		return true
	case http.StatusForbidden:
		code := ErrorCode(err)
		return code == "AuthorizationFailed" || code == "InvalidAuthenticationToken"
	}
	return false
}

// HandleCredentialError marks err as unauthorized if it was caused by an
// invalid credential, so that callers can report a useful message.
func HandleCredentialError(err error) error {
	if !IsAuthorisationFailure(err) {
		return err
	}
	logger.Debugf("azure credential rejected: %v", err)
	return errors.WithType(err, errors.Unauthorized)
}

// Message returns a single line description of err suitable for
// showing to a user. Azure response errors carry the full response body,
// which is replaced with the error code. Annotations are kept.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) || respErr.ErrorCode == "" {
		return err.Error()
	}
	short := respErr.ErrorCode + " (" + http.StatusText(respErr.StatusCode) + ")"
	return strings.Replace(err.Error(), respErr.Error(), short, 1)
}
