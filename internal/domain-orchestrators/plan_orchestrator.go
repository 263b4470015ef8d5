// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"strings"

	"swebatch/internal/domain/entities"
	"swebatch/internal/domain/interfaces"
	"swebatch/internal/domain/interfaces/repositories"
	"swebatch/internal/domain/services"
)

// RepoLocator interface for mapping instance ids to local clone sources
type RepoLocator interface {
	RepoPath(instanceID string) (string, error)
}

// ScriptWriter interface for rendering per-job isolation scripts
type ScriptWriter interface {
	WriteJobScript(job entities.Job, template, outdir string) (string, error)
}

// BatchWriter interface for rendering the top-level aggregate script
type BatchWriter interface {
	WriteRunAll(scripts []string, outdir string, parallel bool) (string, error)
}

// PlanOrchestrator coordinates the complete batch compilation workflow:
// eager planning of every job, per-job script generation, then aggregation.
type PlanOrchestrator struct {
	catalog      repositories.InstanceCatalog
	locator      RepoLocator
	includes     services.IncludePaths
	registry     *services.TemplateRegistry
	scriptWriter ScriptWriter
	batchWriter  BatchWriter
	logger       interfaces.Logger
	outdir       string
	parallel     bool
}

// PlanOrchestratorConfig holds configuration for the orchestrator
type PlanOrchestratorConfig struct {
	Outdir   string
	Parallel bool
}

// NewPlanOrchestrator creates a new plan orchestrator
func NewPlanOrchestrator(
	catalog repositories.InstanceCatalog,
	locator RepoLocator,
	includes services.IncludePaths,
	registry *services.TemplateRegistry,
	scriptWriter ScriptWriter,
	batchWriter BatchWriter,
	logger interfaces.Logger,
	config PlanOrchestratorConfig,
) *PlanOrchestrator {
	outdir := config.Outdir
	if outdir == "" {
		outdir = "sweout"
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &PlanOrchestrator{
		catalog:      catalog,
		locator:      locator,
		includes:     includes,
		registry:     registry,
		scriptWriter: scriptWriter,
		batchWriter:  batchWriter,
		logger:       logger,
		outdir:       outdir,
		parallel:     config.Parallel,
	}
}

// PlanResult contains the result of a batch compilation
type PlanResult struct {
	Jobs          []entities.Job
	ScriptPaths   []string
	TopScriptPath string
}

// ComputeJobs resolves every instance id into a job descriptor, in input
// order, one job per id. Planning is eager and all-or-nothing: every catalog
// entry and every family's include path is checked before any job is
// returned, so a single bad id aborts the batch before anything is written.
// Duplicate ids yield duplicate jobs; the later job's script overwrites the
// earlier one's directory, which is a caller error and not handled specially.
func (o *PlanOrchestrator) ComputeJobs(ctx context.Context, instanceIDs []string) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0, len(instanceIDs))

	for _, id := range instanceIDs {
		instance, err := o.catalog.GetInstance(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", id, err)
		}

		family, err := services.RepoFamily(id)
		if err != nil {
			return nil, err
		}
		if _, err := o.includes.Lookup(family); err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", id, err)
		}

		repoPath, err := o.locator.RepoPath(id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", id, err)
		}

		jobs = append(jobs, entities.Job{
			InstanceID: id,
			RepoPath:   repoPath,
			Commit:     instance.BaseCommit,
		})
	}

	return jobs, nil
}

// CompileBatch executes the complete workflow: plan all jobs, render one
// isolation script per job, then render the aggregate entry point.
func (o *PlanOrchestrator) CompileBatch(ctx context.Context, instanceIDs []string, command string) (*PlanResult, error) {
	jobs, err := o.ComputeJobs(ctx, instanceIDs)
	if err != nil {
		return nil, err
	}

	template := o.registry.Resolve(command)

	scripts := make([]string, 0, len(jobs))
	for _, job := range jobs {
		scriptPath, err := o.scriptWriter.WriteJobScript(job, template, o.outdir)
		if err != nil {
			return nil, err
		}
		o.logger.Info("generated job script",
			interfaces.F("instance", job.InstanceID),
			interfaces.F("path", scriptPath))
		scripts = append(scripts, scriptPath)
	}

	topPath, err := o.batchWriter.WriteRunAll(scripts, o.outdir, o.parallel)
	if err != nil {
		return nil, err
	}
	o.logger.Info("generated aggregate script", interfaces.F("path", topPath))

	return &PlanResult{
		Jobs:          jobs,
		ScriptPaths:   scripts,
		TopScriptPath: topPath,
	}, nil
}

// Summary returns a human-readable summary of the compiled batch
func (r *PlanResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compiled %d job script(s):\n", len(r.ScriptPaths))
	for _, script := range r.ScriptPaths {
		fmt.Fprintf(&b, "  %s\n", script)
	}
	fmt.Fprintf(&b, "To run all jobs, execute: ./%s", r.TopScriptPath)
	return b.String()
}
