package config

// Canonical resource naming and polling defaults. The vault, registry and
// storage account carry random suffixes, so only their prefixes are fixed.
const (
	DefaultLocation             = "centralus"
	DefaultClusterResourceGroup = "rstudio-aks-rg"
	DefaultNetworkResourceGroup = "rstudio-network-rg"
	DefaultClusterName          = "rstudio-aks"
	DefaultPublicIPName         = "rstudio-public-ip"

	DefaultVaultPrefix     = "ad-key-vault"
	DefaultResourcePrefix  = "rstudio"
	DefaultAdminSecretName = "admin-password"
	DefaultKubeconfigPath  = "kubeconfig"

	DefaultImageRepository = "rstudio-server"
	DefaultImageTag        = "latest"
	DefaultBuildContext    = "docker"

	DefaultDirectoryDir     = "01-directory"
	DefaultServicesDir      = "02-services"
	DefaultClusterDir       = "03-cluster"
	DefaultDNSLinkTarget    = "azurerm_private_dns_zone_virtual_network_link.ad_dns_link"
	DefaultDNSSettleSeconds = 30

	DefaultHealthPath            = "/auth-sign-in"
	DefaultExpectedStatus        = 200
	DefaultMaxAttempts           = 50
	DefaultIntervalSeconds       = 10
	DefaultRequestTimeoutSeconds = 10
)

// DefaultConfigFile is looked for in the working directory when no
// --config flag is given.
const DefaultConfigFile = "rstudio-aks.yaml"
