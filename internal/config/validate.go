package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the configuration for values that would make a
// deployment fail in a confusing way later. SubscriptionID is checked at
// client construction, not here, so offline commands still work.
func (c *Config) Validate() error {
	var errs []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"cluster_resource_group", c.ClusterResourceGroup},
		{"network_resource_group", c.NetworkResourceGroup},
		{"cluster_name", c.ClusterName},
		{"public_ip_name", c.PublicIPName},
		{"vault_prefix", c.VaultPrefix},
		{"resource_prefix", c.ResourcePrefix},
		{"admin_secret_name", c.AdminSecretName},
		{"kubeconfig_path", c.KubeconfigPath},
		{"image.repository", c.Image.Repository},
		{"image.tag", c.Image.Tag},
		{"terraform.directory_dir", c.Terraform.DirectoryDir},
		{"terraform.services_dir", c.Terraform.ServicesDir},
		{"terraform.cluster_dir", c.Terraform.ClusterDir},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: "must not be empty"})
		}
	}

	if !strings.HasPrefix(c.Health.Path, "/") {
		errs = append(errs, ValidationError{Field: "health.path", Message: "must start with '/'"})
	}
	if c.Health.ExpectedStatus < 100 || c.Health.ExpectedStatus > 599 {
		errs = append(errs, ValidationError{Field: "health.expected_status", Message: "must be a valid HTTP status code"})
	}
	if c.Health.MaxAttempts <= 0 {
		errs = append(errs, ValidationError{Field: "health.max_attempts", Message: "must be greater than 0"})
	}
	if c.Health.IntervalSeconds < 0 {
		errs = append(errs, ValidationError{Field: "health.interval_seconds", Message: "must be non-negative"})
	}
	if c.Health.RequestTimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{Field: "health.request_timeout_seconds", Message: "must be greater than 0"})
	}
	if c.Terraform.DNSSettleSeconds < 0 {
		errs = append(errs, ValidationError{Field: "terraform.dns_settle_seconds", Message: "must be non-negative"})
	}

	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
