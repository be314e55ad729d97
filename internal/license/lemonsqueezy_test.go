package license_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnichat/client/internal/license"
)

func licenseServer(t *testing.T, status int, body string, gotBody *map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if gotBody != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(gotBody))
			(*gotBody)["path"] = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLemonSqueezy_Activate(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantSuccess bool
		wantMessage string
		wantID      string
	}{
		{
			name:        "activated",
			status:      http.StatusOK,
			body:        `{"activated":true,"license_key":{"status":"active","product_id":795978},"instance":{"id":"inst-1"},"meta":{"product_id":795978}}`,
			wantSuccess: true,
			wantMessage: "License activated successfully!",
			wantID:      "inst-1",
		},
		{
			name:        "other product",
			status:      http.StatusOK,
			body:        `{"activated":true,"instance":{"id":"inst-1"},"meta":{"product_id":1}}`,
			wantMessage: "This license key is not valid for OmniChat.",
		},
		{
			name:        "server error text wins",
			status:      http.StatusNotFound,
			body:        `{"activated":false,"error":"license_key not found."}`,
			wantMessage: "license_key not found.",
		},
		{
			name:        "expired",
			status:      http.StatusBadRequest,
			body:        `{"activated":false,"license_key":{"status":"expired"}}`,
			wantMessage: "This license key has expired.",
		},
		{
			name:        "disabled",
			status:      http.StatusBadRequest,
			body:        `{"activated":false,"license_key":{"status":"disabled"}}`,
			wantMessage: "This license key has been disabled.",
		},
		{
			name:        "activation limit",
			status:      http.StatusBadRequest,
			body:        `{"activated":false,"meta":{"activation_limit_reached":true}}`,
			wantMessage: "Activation limit reached. Deactivate another device first.",
		},
		{
			name:        "key details without status come before the activation limit",
			status:      http.StatusBadRequest,
			body:        `{"activated":false,"license_key":{"product_id":795978},"meta":{"activation_limit_reached":true}}`,
			wantMessage: "Invalid license key.",
		},
		{
			name:        "empty server error text is still used",
			status:      http.StatusBadRequest,
			body:        `{"activated":false,"error":"","license_key":{"status":"expired"}}`,
			wantMessage: "",
		},
		{
			name:        "nothing useful",
			status:      http.StatusBadRequest,
			body:        `{}`,
			wantMessage: "Invalid license key.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			server := licenseServer(t, tt.status, tt.body, &got)
			client := license.NewLemonSqueezyClient(server.URL, 795978, time.Second)

			result, err := client.Activate(context.Background(), " KEY-1 ", "laptop")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantID, result.InstanceID)

			assert.Equal(t, "/activate", got["path"])
			assert.Equal(t, "KEY-1", got["license_key"])
			assert.Equal(t, "laptop", got["instance_name"])
		})
	}
}

func TestLemonSqueezy_ActivateUnreadableResponse(t *testing.T) {
	server := licenseServer(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)
	client := license.NewLemonSqueezyClient(server.URL, 795978, time.Second)

	_, err := client.Activate(context.Background(), "KEY", "laptop")
	assert.Error(t, err)
}

func TestLemonSqueezy_Deactivate(t *testing.T) {
	var got map[string]string
	server := licenseServer(t, http.StatusOK, `{"deactivated":true}`, &got)
	client := license.NewLemonSqueezyClient(server.URL, 795978, time.Second)

	result, err := client.Deactivate(context.Background(), "KEY-1", "inst-1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/deactivate", got["path"])
	assert.Equal(t, "inst-1", got["instance_id"])

	server = licenseServer(t, http.StatusNotFound, `{"deactivated":false,"error":"instance_id not found"}`, nil)
	client = license.NewLemonSqueezyClient(server.URL, 795978, time.Second)
	result, err = client.Deactivate(context.Background(), "KEY-1", "inst-1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "instance_id not found", result.Message)
}
