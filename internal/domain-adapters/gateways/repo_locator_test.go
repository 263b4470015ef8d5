package gateways

import (
	"path/filepath"
	"testing"
)

func TestRepoLocator_RepoPath(t *testing.T) {
	locator := NewRepoLocator("repos")

	tests := []struct {
		name       string
		instanceID string
		want       string
		wantErr    bool
	}{
		{
			name:       "simple family",
			instanceID: "pallets__flask-4045",
			want:       filepath.Join("repos", "flask"),
		},
		{
			name:       "hyphenated family",
			instanceID: "scikit-learn__scikit-learn-10297",
			want:       filepath.Join("repos", "scikit-learn"),
		},
		{
			name:       "malformed id",
			instanceID: "not-an-instance",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locator.RepoPath(tt.instanceID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RepoPath(%q) error = %v, wantErr %v", tt.instanceID, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("RepoPath(%q) = %q, want %q", tt.instanceID, got, tt.want)
			}
		})
	}
}
