package license

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Activator talks to the licensing service.
type Activator interface {
	Activate(ctx context.Context, key, instanceName string) (*Result, error)
	Deactivate(ctx context.Context, key, instanceID string) (*Result, error)
}

// Result is the outcome of an activation or deactivation the server answered.
// Transport and decoding failures are returned as errors instead.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InstanceID string `json:"instance_id,omitempty"`
}

type lemonSqueezyClient struct {
	client    *resty.Client
	productID int64
}

// NewLemonSqueezyClient returns an Activator for the LemonSqueezy license API.
// A zero productID disables the product ownership check.
func NewLemonSqueezyClient(baseURL string, productID int64, timeout time.Duration) Activator {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &lemonSqueezyClient{client: client, productID: productID}
}

type lsLicenseKey struct {
	Status    *string `json:"status"`
	ProductID *int64  `json:"product_id"`
}

type lsMeta struct {
	ProductID              *int64 `json:"product_id"`
	ActivationLimitReached *bool  `json:"activation_limit_reached"`
}

type lsInstance struct {
	ID *string `json:"id"`
}

type lsResponse struct {
	Activated   *bool         `json:"activated"`
	Deactivated *bool         `json:"deactivated"`
	Error       *string       `json:"error"`
	LicenseKey  *lsLicenseKey `json:"license_key"`
	Instance    *lsInstance   `json:"instance"`
	Meta        *lsMeta       `json:"meta"`
}

func (c *lemonSqueezyClient) post(ctx context.Context, path string, body interface{}) (*lsResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	var data lsResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse response (%d): %w", resp.StatusCode(), err)
	}
	return &data, nil
}

func (c *lemonSqueezyClient) Activate(ctx context.Context, key, instanceName string) (*Result, error) {
	data, err := c.post(ctx, "/activate", map[string]string{
		"license_key":   strings.TrimSpace(key),
		"instance_name": instanceName,
	})
	if err != nil {
		return nil, err
	}

	keyActive := data.LicenseKey != nil && data.LicenseKey.Status != nil && *data.LicenseKey.Status == "active"
	if (data.Activated != nil && *data.Activated) || keyActive {
		if pid := data.productID(); c.productID != 0 && pid != nil && *pid != c.productID {
			return &Result{Success: false, Message: "This license key is not valid for OmniChat."}, nil
		}
		result := &Result{Success: true, Message: "License activated successfully!"}
		if data.Instance != nil && data.Instance.ID != nil {
			result.InstanceID = *data.Instance.ID
		}
		return result, nil
	}

	return &Result{Success: false, Message: data.activationError()}, nil
}

func (c *lemonSqueezyClient) Deactivate(ctx context.Context, key, instanceID string) (*Result, error) {
	data, err := c.post(ctx, "/deactivate", map[string]string{
		"license_key": strings.TrimSpace(key),
		"instance_id": instanceID,
	})
	if err != nil {
		return nil, err
	}
	if data.Deactivated != nil && *data.Deactivated {
		return &Result{Success: true, Message: "License deactivated. You can activate on another device."}, nil
	}
	message := "Failed to deactivate license."
	if data.Error != nil && *data.Error != "" {
		message = *data.Error
	}
	return &Result{Success: false, Message: message}, nil
}

func (r *lsResponse) productID() *int64 {
	if r.Meta != nil && r.Meta.ProductID != nil {
		return r.Meta.ProductID
	}
	if r.LicenseKey != nil {
		return r.LicenseKey.ProductID
	}
	return nil
}

func (r *lsResponse) activationError() string {
	if r.Error != nil {
		return *r.Error
	}
	if r.LicenseKey != nil {
		status := ""
		if r.LicenseKey.Status != nil {
			status = *r.LicenseKey.Status
		}
		switch status {
		case "inactive":
			return "This license key is inactive."
		case "expired":
			return "This license key has expired."
		case "disabled":
			return "This license key has been disabled."
		}
		return "Invalid license key."
	}
	if r.Meta != nil && r.Meta.ActivationLimitReached != nil && *r.Meta.ActivationLimitReached {
		return "Activation limit reached. Deactivate another device first."
	}
	return "Invalid license key."
}
