// Package prerequisites checks for the client tools the deployment
// shells out to.
package prerequisites

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string

	// VersionArgs invokes the tool's version output (best effort).
	VersionArgs []string
}

// DefaultTools returns the tools every apply/destroy run needs.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "terraform",
			Required:    true,
			Description: "Applies and destroys the infrastructure layers",
			InstallURL:  "https://developer.hashicorp.com/terraform/install",
			VersionArgs: []string{"version"},
		},
		{
			Name:        "docker",
			Required:    true,
			Description: "Builds and pushes the RStudio container image",
			InstallURL:  "https://docs.docker.com/engine/install/",
			VersionArgs: []string{"--version"},
		},
	}
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "kubectl",
			Required:    false,
			Description: "Useful for inspecting the cluster with the fetched kubeconfig",
			InstallURL:  "https://kubernetes.io/docs/tasks/tools/",
			VersionArgs: []string{"version", "--client"},
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// Error aggregates all missing required tools into one error, or nil.
func (r *CheckResults) Error() error {
	var result *multierror.Error
	for _, tool := range r.Missing {
		if tool.Required {
			result = multierror.Append(result,
				fmt.Errorf("%s not found in PATH (%s)", tool.Name, tool.InstallURL))
		}
	}
	return result.ErrorOrNil()
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = toolVersion(tool)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default required tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// CheckAll checks all tools (default + optional).
func CheckAll() *CheckResults {
	defaults := DefaultTools()
	optional := OptionalTools()
	all := make([]Tool, 0, len(defaults)+len(optional))
	all = append(all, defaults...)
	all = append(all, optional...)
	return Check(all)
}

// CheckEnvironment verifies the Azure subscription is identifiable.
// The SDK credential chain is probed later, at client construction.
func CheckEnvironment(subscriptionID string) error {
	if subscriptionID != "" {
		return nil
	}
	if os.Getenv("AZURE_SUBSCRIPTION_ID") != "" {
		return nil
	}
	return fmt.Errorf("no Azure subscription configured: set AZURE_SUBSCRIPTION_ID or subscription_id in the config")
}

// toolVersion returns the first line of the tool's version output.
// Returns empty string if the version cannot be determined.
func toolVersion(tool Tool) string {
	if len(tool.VersionArgs) == 0 {
		return ""
	}
	// #nosec G204
	out, err := exec.Command(tool.Name, tool.VersionArgs...).Output()
	if err != nil {
		return ""
	}
	lines := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)
	return strings.TrimSpace(lines[0])
}
