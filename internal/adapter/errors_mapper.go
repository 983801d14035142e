// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a completed response into the package's error
// taxonomy: nil for 2xx, a [RequestError] otherwise. Transport failures
// never reach here; they are wrapped with [ErrUnknown] at the call site.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestError{
		Status:  resp.StatusCode(),
		Message: extractErrorMessage(resp.Body()),
	}
}

// extractErrorMessage pulls a human-readable message out of an error
// body. The backend is inconsistent about the field name, so "detail",
// "error" and "message" are tried in that order before falling back to
// the raw body text.
func extractErrorMessage(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"detail", "error", "message"} {
			var msg string
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &msg) == nil {
				return msg
			}
		}
	}

	return strings.TrimSpace(string(body))
}
