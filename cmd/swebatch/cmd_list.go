package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"swebatch/internal/domain/entities"
	"swebatch/internal/domain/services"
	"swebatch/internal/external-adapters/yaml"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		catalogDir = fs.String("catalog-dir", "catalog", "Path to catalog directory")
		repo       = fs.String("repo", "", "Filter by repository family (e.g. flask)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: swebatch list [options]

List all benchmark instances known to the catalog.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  swebatch list
  swebatch list --repo django
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	catalog := yaml.NewCatalogRepository(*catalogDir, services.DefaultIncludePaths())
	instances, err := catalog.ListInstances(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing instances: %v\n", err)
		os.Exit(1)
	}

	// Filter by family if requested
	if *repo != "" {
		filtered := make([]*entities.Instance, 0)
		for _, inst := range instances {
			if inst.Repo == *repo {
				filtered = append(filtered, inst)
			}
		}
		instances = filtered
	}

	if *repo != "" {
		fmt.Printf("Instances for %s (%d total):\n\n", *repo, len(instances))
	} else {
		fmt.Printf("Available instances (%d total):\n\n", len(instances))
	}

	for _, inst := range instances {
		fmt.Printf("  %-40s %s @ %s\n", inst.ID, inst.Repo, shortCommit(inst.BaseCommit))
	}
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
