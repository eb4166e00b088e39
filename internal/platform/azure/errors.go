package azure

import "fmt"

// DiscoveryError indicates that a prefix query found no usable resource.
// Discovery failures are always fatal: a dependent phase must never run
// with an empty resource name.
type DiscoveryError struct {
	Resource string
	Prefix   string
}

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("no %s found with name prefix %q", e.Resource, e.Prefix)
}

// NameResolutionError indicates a public IP without a DNS label. This is a
// provisioning defect, not transient unavailability, so it is never retried.
type NameResolutionError struct {
	ResourceGroup string
	Name          string
}

// Error implements the error interface.
func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("public IP %s/%s has no DNS label", e.ResourceGroup, e.Name)
}

// usable rejects the empty string and the literal "null" that provider
// queries have been seen to return for absent names.
func usable(name string) bool {
	return name != "" && name != "null"
}
