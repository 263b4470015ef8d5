// Package main provides the swebatch CLI for compiling benchmark job scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"swebatch/internal/domain-adapters/gateways"
	orchestrators "swebatch/internal/domain-orchestrators"
	"swebatch/internal/domain/interfaces"
	"swebatch/internal/domain/services"
	"swebatch/internal/external-adapters/yaml"
)

// stringList collects a repeatable string flag
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func runGen(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	var instanceIDs stringList
	fs.Var(&instanceIDs, "i", "Instance id to compile (repeatable)")
	var (
		outdir        = fs.String("o", "sweout", "Where to put the output files")
		command       = fs.String("c", "jedi", "The main command template (can be a template or a name)")
		parallel      = fs.Bool("p", false, "Whether the aggregate script runs jobs in parallel")
		catalogDir    = fs.String("catalog-dir", "catalog", "Path to catalog directory")
		reposDir      = fs.String("repos-dir", "repos", "Root directory of local repository checkouts")
		templatesFile = fs.String("templates", "", "Optional YAML file of extra command templates")
		verbose       = fs.Bool("verbose", false, "Log each generated script")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: swebatch gen -i <instance_id> [-i <instance_id> ...] [options]
       swebatch gen [options] <instance_id> ...

Compile one isolation script per instance id plus a run-all entry point.

Examples:
  swebatch gen -i pallets__flask-4045
  swebatch gen -i django__django-11099 -i django__django-11133 -p
  swebatch gen -c pylsp -o analysis-out pytest-dev__pytest-5103
  swebatch gen -c './mytool {repo_path} {commit}' psf__requests-2317

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	// Positional arguments are instance ids too
	instanceIDs = append(instanceIDs, fs.Args()...)
	if len(instanceIDs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one instance id is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	// Built-in templates plus optional extras from file
	templates := services.DefaultCommandTemplates()
	if *templatesFile != "" {
		extra, err := yaml.LoadCommandTemplates(*templatesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for name, tmpl := range extra {
			templates[name] = tmpl
		}
	}
	registry := services.NewTemplateRegistry(templates)

	// Catalog doubles as the include-path table: family files may override
	// the static defaults.
	catalog := yaml.NewCatalogRepository(*catalogDir, services.DefaultIncludePaths())
	locator := gateways.NewRepoLocator(*reposDir)
	scriptWriter := gateways.NewScriptWriter(catalog)
	batchWriter := gateways.NewBatchWriter()

	var logger interfaces.Logger = &interfaces.NoOpLogger{}
	if *verbose {
		logger = &interfaces.StderrLogger{}
	}

	orch := orchestrators.NewPlanOrchestrator(
		catalog,
		locator,
		catalog,
		registry,
		scriptWriter,
		batchWriter,
		logger,
		orchestrators.PlanOrchestratorConfig{
			Outdir:   *outdir,
			Parallel: *parallel,
		},
	)

	result, err := orch.CompileBatch(ctx, instanceIDs, *command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Summary())
}
