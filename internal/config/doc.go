// Package config defines the deployment configuration for the RStudio
// AKS cluster: resource groups, discovery prefixes, image coordinates,
// terraform layer directories and readiness-poll settings.
//
// Everything has a default matching the canonical topology, so the CLI
// runs without a config file. A YAML file overrides individual fields.
package config
