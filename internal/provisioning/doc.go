// Package provisioning provides the phase pipeline for the RStudio AKS
// deployment.
//
// The deployment is an ordered list of phases, each an opaque external
// operation (a terraform layer, an image build, credential wiring). Phases
// run strictly sequentially; the first failure aborts the run. Discovered
// resource names flow between phases through a shared State rather than
// through the environment, and an empty discovery is always fatal before
// any dependent phase runs.
//
// Phase implementations live in focused subpackages:
//   - directory/ — mini-AD layer and Key Vault discovery
//   - services/  — network, NFS storage and registry layer
//   - image/     — memoized RStudio image build and push
//   - cluster/   — AKS layer
//   - access/    — kubeconfig and directory credentials
//   - destroy/   — teardown in dependency order
package provisioning
