// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package azuretesting

import (
	"io"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// ResponseError returns an Azure response error with the given HTTP
// status and Azure error code, as returned by the SDK clients.
func ResponseError(status int, code string) error {
	req, _ := http.NewRequest(http.MethodPut, "https://management.azure.com/subscriptions/sub-id", nil)
	body := `{"error":{"code":"` + code + `","message":"test failure"}}`
	return &azcore.ResponseError{
		ErrorCode:  code,
		StatusCode: status,
		RawResponse: &http.Response{
			Status:     http.StatusText(status),
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		},
	}
}
