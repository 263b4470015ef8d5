// Package entities defines core domain models and data structures.
package entities

// Instance represents one benchmark instance from the catalog: a repository
// family plus a pinned base commit, keyed by an opaque instance id.
type Instance struct {
	ID         string
	Repo       string // repository family name, e.g. "flask"
	BaseCommit string
}
