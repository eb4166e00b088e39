// Package azure wraps the Azure SDK clients behind a single interface so
// provisioning phases and tests depend on operations, not SDK types.
package azure

import "context"

// Vault identifies a discovered Key Vault.
type Vault struct {
	Name string
	URI  string
}

// Registry identifies a discovered container registry.
type Registry struct {
	Name          string
	LoginServer   string
	ResourceGroup string
}

// Credentials are the admin credentials of a container registry.
type Credentials struct {
	Username string
	Password string
}

// Client is the minimal Azure surface the deployment needs.
type Client interface {
	// PublicIPFQDN returns the DNS name bound to a public IP resource.
	// A missing DNS label is a NameResolutionError, not a transient fault.
	PublicIPFQDN(ctx context.Context, resourceGroup, name string) (string, error)

	// VaultByPrefix finds the single Key Vault whose name starts with prefix.
	VaultByPrefix(ctx context.Context, prefix string) (Vault, error)

	// StorageAccountByPrefix finds the storage account whose name starts with prefix.
	StorageAccountByPrefix(ctx context.Context, prefix string) (string, error)

	// RegistryByPrefix finds the container registry whose name starts with prefix.
	RegistryByPrefix(ctx context.Context, prefix string) (Registry, error)

	// RegistryCredentials returns the admin credentials of a registry.
	RegistryCredentials(ctx context.Context, registry Registry) (Credentials, error)

	// TagExists reports whether repository:tag is already present in the registry.
	TagExists(ctx context.Context, loginServer, repository, tag string) (bool, error)

	// Secret reads the current version of a Key Vault secret.
	Secret(ctx context.Context, vaultURI, name string) (string, error)

	// ClusterUserKubeconfig fetches the user kubeconfig of an AKS cluster.
	ClusterUserKubeconfig(ctx context.Context, resourceGroup, clusterName string) ([]byte, error)
}
