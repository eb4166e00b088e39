package config

import (
	"os"
	"time"
)

// Config holds all deployment settings. Every field has a working default,
// so an empty config file (or none at all) deploys the stock topology.
type Config struct {
	// SubscriptionID is the Azure subscription to operate in.
	// Falls back to the AZURE_SUBSCRIPTION_ID environment variable.
	SubscriptionID string `yaml:"subscription_id"`

	// Location is the Azure region for all resources.
	Location string `yaml:"location"`

	// ClusterResourceGroup holds the AKS cluster and the mini-AD vault.
	ClusterResourceGroup string `yaml:"cluster_resource_group"`

	// NetworkResourceGroup holds the virtual network and the ingress public IP.
	NetworkResourceGroup string `yaml:"network_resource_group"`

	// ClusterName is the AKS managed cluster name.
	ClusterName string `yaml:"cluster_name"`

	// PublicIPName is the ingress public IP resource carrying the DNS label
	// that the readiness check resolves.
	PublicIPName string `yaml:"public_ip_name"`

	// VaultPrefix selects the mini-AD Key Vault by name prefix.
	VaultPrefix string `yaml:"vault_prefix"`

	// ResourcePrefix selects the container registry and storage account
	// by name prefix. Both get random suffixes at creation time, so they
	// are discovered rather than named.
	ResourcePrefix string `yaml:"resource_prefix"`

	// AdminSecretName is the vault secret holding the directory admin password.
	AdminSecretName string `yaml:"admin_secret_name"`

	// KubeconfigPath is where the fetched cluster credentials are written.
	KubeconfigPath string `yaml:"kubeconfig_path"`

	Image     Image     `yaml:"image"`
	Terraform Terraform `yaml:"terraform"`
	Health    Health    `yaml:"health"`
}

// Image configures the RStudio container image build.
type Image struct {
	Repository   string `yaml:"repository"`
	Tag          string `yaml:"tag"`
	BuildContext string `yaml:"build_context"`
}

// Terraform configures the layer directories handed to the terraform CLI.
type Terraform struct {
	DirectoryDir string `yaml:"directory_dir"`
	ServicesDir  string `yaml:"services_dir"`
	ClusterDir   string `yaml:"cluster_dir"`

	// DNSLinkTarget is the resource address of the private-DNS
	// virtual-network link. It must be destroyed before the rest of the
	// services layer, and the deletion needs time to settle.
	DNSLinkTarget    string `yaml:"dns_link_target"`
	DNSSettleSeconds int    `yaml:"dns_settle_seconds"`
}

// Health configures the readiness poll against the RStudio sign-in page.
type Health struct {
	Path                  string `yaml:"path"`
	ExpectedStatus        int    `yaml:"expected_status"`
	MaxAttempts           int    `yaml:"max_attempts"`
	IntervalSeconds       int    `yaml:"interval_seconds"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// Interval returns the pause between poll attempts.
func (h Health) Interval() time.Duration {
	return time.Duration(h.IntervalSeconds) * time.Second
}

// RequestTimeout bounds a single health-check request so a hung
// connection cannot stall the poll loop.
func (h Health) RequestTimeout() time.Duration {
	return time.Duration(h.RequestTimeoutSeconds) * time.Second
}

// DNSSettle returns the pause after the DNS vnet link deletion.
func (t Terraform) DNSSettle() time.Duration {
	return time.Duration(t.DNSSettleSeconds) * time.Second
}

// Default returns the canonical deployment configuration.
func Default() *Config {
	return &Config{
		SubscriptionID:       os.Getenv("AZURE_SUBSCRIPTION_ID"),
		Location:             DefaultLocation,
		ClusterResourceGroup: DefaultClusterResourceGroup,
		NetworkResourceGroup: DefaultNetworkResourceGroup,
		ClusterName:          DefaultClusterName,
		PublicIPName:         DefaultPublicIPName,
		VaultPrefix:          DefaultVaultPrefix,
		ResourcePrefix:       DefaultResourcePrefix,
		AdminSecretName:      DefaultAdminSecretName,
		KubeconfigPath:       DefaultKubeconfigPath,
		Image: Image{
			Repository:   DefaultImageRepository,
			Tag:          DefaultImageTag,
			BuildContext: DefaultBuildContext,
		},
		Terraform: Terraform{
			DirectoryDir:     DefaultDirectoryDir,
			ServicesDir:      DefaultServicesDir,
			ClusterDir:       DefaultClusterDir,
			DNSLinkTarget:    DefaultDNSLinkTarget,
			DNSSettleSeconds: DefaultDNSSettleSeconds,
		},
		Health: Health{
			Path:                  DefaultHealthPath,
			ExpectedStatus:        DefaultExpectedStatus,
			MaxAttempts:           DefaultMaxAttempts,
			IntervalSeconds:       DefaultIntervalSeconds,
			RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
		},
	}
}
