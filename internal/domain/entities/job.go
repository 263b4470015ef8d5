package entities

// Job is the resolved, ready-to-render record for one instance: where to
// clone from and which commit to pin. Built once during batch planning and
// consumed exactly once by script generation.
type Job struct {
	InstanceID string
	RepoPath   string
	Commit     string
}
