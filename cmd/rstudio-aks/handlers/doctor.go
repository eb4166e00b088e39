package handlers

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/util/prerequisites"
)

// checkAllPrereqs runs the full tool check (for testing injection).
var checkAllPrereqs = prerequisites.CheckAll

// Doctor reports whether this machine can run a deployment: client
// tools on PATH, a loadable configuration, and an Azure subscription to
// target. It prints one row per check and returns an error if any
// required check failed.
func Doctor(configPath string) error {
	var problems *multierror.Error

	results := checkAllPrereqs()
	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "found"
			}
			printCheckRow(r.Tool.Name, true, version)
		} else {
			note := "not found"
			if !r.Tool.Required {
				note = "not found (optional)"
			}
			printCheckRow(r.Tool.Name, !r.Tool.Required, note)
		}
	}
	problems = multierror.Append(problems, results.Error())

	cfg, err := loadConfig(configPath)
	if err != nil {
		printCheckRow("configuration", false, err.Error())
		problems = multierror.Append(problems, err)
		fmt.Println()
		return problems.ErrorOrNil()
	}
	printCheckRow("configuration", true, "ok")

	if err := prerequisites.CheckEnvironment(cfg.SubscriptionID); err != nil {
		printCheckRow("azure subscription", false, err.Error())
		problems = multierror.Append(problems, err)
	} else {
		printCheckRow("azure subscription", true, "configured")
	}

	fmt.Println()
	return problems.ErrorOrNil()
}

func printCheckRow(name string, ok bool, note string) {
	indicator := "✅"
	if !ok {
		indicator = "❌"
	}
	fmt.Printf("  %s  %-20s %s\n", indicator, name, note)
}
