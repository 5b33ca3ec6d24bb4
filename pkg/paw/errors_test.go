package paw_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/paw-tools/paw/pkg/paw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &paw.APIError{
		URL:        "https://www.pythonanywhere.com/api/v0/user/alice/webapps/",
		StatusCode: http.StatusBadRequest,
		Status:     "400 Bad Request",
		Body:       `{"domain_name": ["This field is required."]}`,
	}

	msg := apiErr.Error()
	assert.Contains(t, msg, apiErr.URL)
	assert.Contains(t, msg, "400 Bad Request")
	assert.Contains(t, msg, apiErr.Body)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		checker func(error) bool
	}{
		{name: "not found", code: http.StatusNotFound, checker: paw.IsNotFound},
		{name: "conflict", code: http.StatusConflict, checker: paw.IsConflict},
		{name: "forbidden", code: http.StatusForbidden, checker: paw.IsForbidden},
		{name: "unauthorized", code: http.StatusUnauthorized, checker: paw.IsUnauthorized},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := &paw.APIError{URL: "https://example.com/", StatusCode: testCase.code}
			require.True(t, testCase.checker(apiErr))

			wrapped := fmt.Errorf("reloading webapp: %w", apiErr)
			assert.True(t, testCase.checker(wrapped))

			other := &paw.APIError{URL: "https://example.com/", StatusCode: http.StatusInternalServerError}
			assert.False(t, testCase.checker(other))
			assert.False(t, testCase.checker(errors.New("plain error")))
		})
	}
}
