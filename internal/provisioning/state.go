package provisioning

import "github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"

// State holds the results phases thread to each other. It is progressively
// populated as each phase completes; nothing outside the pipeline mutates it.
type State struct {
	// Vault is the mini-AD Key Vault (populated by the directory phase).
	Vault azure.Vault

	// StorageAccount is the NFS storage account name (services phase).
	StorageAccount string

	// Registry is the container registry (services phase).
	Registry azure.Registry

	// Kubeconfig is the fetched AKS user kubeconfig (access phase).
	Kubeconfig []byte
}

// NewState creates an empty pipeline state.
func NewState() *State {
	return &State{}
}
