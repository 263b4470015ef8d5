package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BatchWriter renders the top-level run_all.sh aggregate script
type BatchWriter struct{}

// NewBatchWriter creates a batch writer
func NewBatchWriter() *BatchWriter {
	return &BatchWriter{}
}

// WriteRunAll writes <outdir>/run_all.sh, marks it executable and returns
// its path. Sequential mode runs every job script in input order under
// set -e; parallel mode hands the whole list to GNU parallel in a single
// invocation, leaving fan-out and concurrency limits to the runner.
func (b *BatchWriter) WriteRunAll(scripts []string, outdir string, parallel bool) (string, error) {
	if len(scripts) == 0 {
		return "", fmt.Errorf("no job scripts to aggregate")
	}

	var body strings.Builder
	body.WriteString("#!/bin/bash\nset -e\n")

	if parallel {
		body.WriteString("echo Executing in parallel mode...\n")
		body.WriteString("parallel ::: \\\n")
		for _, script := range scripts[:len(scripts)-1] {
			fmt.Fprintf(&body, "./%s \\\n", script)
		}
		fmt.Fprintf(&body, "./%s\n", scripts[len(scripts)-1])
	} else {
		for _, script := range scripts {
			fmt.Fprintf(&body, "./%s\n", script)
		}
	}

	topPath := filepath.Join(outdir, "run_all.sh")
	//nolint:gosec // G306: the aggregate script must be executable by the later runner
	if err := os.WriteFile(topPath, []byte(body.String()), 0o755); err != nil {
		return "", fmt.Errorf("failed to write aggregate script: %w", err)
	}

	return topPath, nil
}
