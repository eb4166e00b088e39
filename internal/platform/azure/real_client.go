package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/containers/azcontainerregistry"
	armcontainerregistry "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerregistry/armcontainerregistry/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// RealClient implements Client against the Azure SDK.
type RealClient struct {
	credential      azcore.TokenCredential
	publicIPs       *armnetwork.PublicIPAddressesClient
	vaults          *armkeyvault.VaultsClient
	storageAccounts *armstorage.AccountsClient
	registries      *armcontainerregistry.RegistriesClient
	managedClusters *armcontainerservice.ManagedClustersClient
}

var _ Client = &RealClient{}

// NewRealClient builds a client for the given subscription using the
// default Azure credential chain (env, workload identity, CLI).
func NewRealClient(subscriptionID string) (*RealClient, error) {
	if subscriptionID == "" {
		return nil, errors.New("subscription ID is required (set AZURE_SUBSCRIPTION_ID or subscription_id in the config)")
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Azure credential: %w", err)
	}

	networkFactory, err := armnetwork.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client: %w", err)
	}
	vaultFactory, err := armkeyvault.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyvault client: %w", err)
	}
	storageFactory, err := armstorage.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	registryFactory, err := armcontainerregistry.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create container registry client: %w", err)
	}
	containerserviceFactory, err := armcontainerservice.NewClientFactory(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create container service client: %w", err)
	}

	return &RealClient{
		credential:      credential,
		publicIPs:       networkFactory.NewPublicIPAddressesClient(),
		vaults:          vaultFactory.NewVaultsClient(),
		storageAccounts: storageFactory.NewAccountsClient(),
		registries:      registryFactory.NewRegistriesClient(),
		managedClusters: containerserviceFactory.NewManagedClustersClient(),
	}, nil
}

// PublicIPFQDN implements Client.
func (c *RealClient) PublicIPFQDN(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.publicIPs.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get public IP %s/%s: %w", resourceGroup, name, err)
	}

	props := resp.Properties
	if props == nil || props.DNSSettings == nil || props.DNSSettings.Fqdn == nil || !usable(*props.DNSSettings.Fqdn) {
		return "", &NameResolutionError{ResourceGroup: resourceGroup, Name: name}
	}
	return *props.DNSSettings.Fqdn, nil
}

// VaultByPrefix implements Client.
func (c *RealClient) VaultByPrefix(ctx context.Context, prefix string) (Vault, error) {
	pager := c.vaults.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return Vault{}, fmt.Errorf("failed to list key vaults: %w", err)
		}
		for _, v := range page.Value {
			if v.Name == nil || !usable(*v.Name) || !strings.HasPrefix(*v.Name, prefix) {
				continue
			}
			vault := Vault{Name: *v.Name}
			if v.Properties != nil && v.Properties.VaultURI != nil {
				vault.URI = *v.Properties.VaultURI
			}
			if vault.URI == "" {
				vault.URI = fmt.Sprintf("https://%s.vault.azure.net/", vault.Name)
			}
			return vault, nil
		}
	}
	return Vault{}, &DiscoveryError{Resource: "key vault", Prefix: prefix}
}

// StorageAccountByPrefix implements Client.
func (c *RealClient) StorageAccountByPrefix(ctx context.Context, prefix string) (string, error) {
	pager := c.storageAccounts.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list storage accounts: %w", err)
		}
		for _, a := range page.Value {
			if a.Name != nil && usable(*a.Name) && strings.HasPrefix(*a.Name, prefix) {
				return *a.Name, nil
			}
		}
	}
	return "", &DiscoveryError{Resource: "storage account", Prefix: prefix}
}

// RegistryByPrefix implements Client.
func (c *RealClient) RegistryByPrefix(ctx context.Context, prefix string) (Registry, error) {
	pager := c.registries.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return Registry{}, fmt.Errorf("failed to list container registries: %w", err)
		}
		for _, r := range page.Value {
			if r.Name == nil || !usable(*r.Name) || !strings.HasPrefix(*r.Name, prefix) {
				continue
			}
			registry := Registry{Name: *r.Name}
			if r.Properties != nil && r.Properties.LoginServer != nil {
				registry.LoginServer = *r.Properties.LoginServer
			}
			if r.ID != nil {
				registry.ResourceGroup = resourceGroupFromID(*r.ID)
			}
			return registry, nil
		}
	}
	return Registry{}, &DiscoveryError{Resource: "container registry", Prefix: prefix}
}

// RegistryCredentials implements Client.
func (c *RealClient) RegistryCredentials(ctx context.Context, registry Registry) (Credentials, error) {
	resp, err := c.registries.ListCredentials(ctx, registry.ResourceGroup, registry.Name, nil)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to list credentials for registry %s: %w", registry.Name, err)
	}

	creds := Credentials{}
	if resp.Username != nil {
		creds.Username = *resp.Username
	}
	for _, p := range resp.Passwords {
		if p.Value != nil {
			creds.Password = *p.Value
			break
		}
	}
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, fmt.Errorf("registry %s has no admin credentials (admin user disabled?)", registry.Name)
	}
	return creds, nil
}

// TagExists implements Client.
func (c *RealClient) TagExists(ctx context.Context, loginServer, repository, tag string) (bool, error) {
	client, err := azcontainerregistry.NewClient("https://"+loginServer, c.credential, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create registry data-plane client: %w", err)
	}

	_, err = client.GetTagProperties(ctx, repository, tag, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to query tag %s/%s:%s: %w", loginServer, repository, tag, err)
	}
	return true, nil
}

// Secret implements Client.
func (c *RealClient) Secret(ctx context.Context, vaultURI, name string) (string, error) {
	client, err := azsecrets.NewClient(vaultURI, c.credential, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create secrets client for %s: %w", vaultURI, err)
	}

	resp, err := client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("failed to read secret %q from %s: %w", name, vaultURI, err)
	}
	if resp.Value == nil || *resp.Value == "" {
		return "", fmt.Errorf("secret %q in %s is empty", name, vaultURI)
	}
	return *resp.Value, nil
}

// ClusterUserKubeconfig implements Client.
func (c *RealClient) ClusterUserKubeconfig(ctx context.Context, resourceGroup, clusterName string) ([]byte, error) {
	resp, err := c.managedClusters.ListClusterUserCredentials(ctx, resourceGroup, clusterName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials for cluster %s/%s: %w", resourceGroup, clusterName, err)
	}

	for _, kc := range resp.Kubeconfigs {
		if kc != nil && len(kc.Value) > 0 {
			return kc.Value, nil
		}
	}
	return nil, fmt.Errorf("cluster %s/%s returned no kubeconfig", resourceGroup, clusterName)
}

// resourceGroupFromID extracts the resource group segment of an ARM ID.
func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i < len(parts)-1; i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}
