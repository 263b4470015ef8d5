package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"swebatch/internal/domain/entities"
	"swebatch/internal/domain/services"
)

// jobScriptSkeleton is the isolation contract every generated job script
// carries: fail-fast, a job-scoped analyzer cache, a throwaway fresh clone
// pinned to the base commit, and all command output captured in a job-local
// log file.
const jobScriptSkeleton = `#!/bin/bash
set -e
# analyzer caching
export XDG_CACHE_HOME={outdir}/{instance_id}
rm -rf {outdir}/{instance_id}/repo
git clone {repo_path} {outdir}/{instance_id}/repo
cd {outdir}/{instance_id}/repo
git checkout {commit}
cd -
echo Logs for {instance_id} is at {outdir}/{instance_id}/log.txt
( {command} ) > {outdir}/{instance_id}/log.txt 2>&1
`

// ScriptWriter renders per-job isolation scripts to disk
type ScriptWriter struct {
	includes services.IncludePaths
}

// NewScriptWriter creates a script writer using the given include-path table
func NewScriptWriter(includes services.IncludePaths) *ScriptWriter {
	return &ScriptWriter{includes: includes}
}

// WriteJobScript renders the isolation script for one job into
// <outdir>/<instance id>/main.sh, marks it executable and returns its path.
//
// Rendering is two explicit passes: the command template is expanded first
// (it may itself reference repo_path, commit, include_path, instance_id or
// outdir), and only the fully-rendered command is added to the dictionary
// used to expand the outer skeleton.
func (w *ScriptWriter) WriteJobScript(job entities.Job, template, outdir string) (string, error) {
	family, err := services.RepoFamily(job.InstanceID)
	if err != nil {
		return "", err
	}

	includePath, err := w.includes.Lookup(family)
	if err != nil {
		return "", err
	}

	vars := map[string]string{
		"repo_path":    job.RepoPath,
		"commit":       job.Commit,
		"include_path": includePath,
		"instance_id":  job.InstanceID,
		"outdir":       outdir,
	}

	command, err := services.Expand(template, vars)
	if err != nil {
		return "", fmt.Errorf("failed to render command for %s: %w", job.InstanceID, err)
	}
	vars["command"] = command

	body, err := services.Expand(jobScriptSkeleton, vars)
	if err != nil {
		return "", fmt.Errorf("failed to render script for %s: %w", job.InstanceID, err)
	}

	instanceDir := filepath.Join(outdir, job.InstanceID)
	if err := os.MkdirAll(instanceDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create job directory: %w", err)
	}

	scriptPath := filepath.Join(instanceDir, "main.sh")
	//nolint:gosec // G306: generated scripts must be executable by the later runner
	if err := os.WriteFile(scriptPath, []byte(body), 0o755); err != nil {
		return "", fmt.Errorf("failed to write job script: %w", err)
	}

	return scriptPath, nil
}
