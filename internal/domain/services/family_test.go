package services

import "testing"

func TestRepoFamily(t *testing.T) {
	tests := []struct {
		name       string
		instanceID string
		want       string
		wantErr    bool
	}{
		{
			name:       "simple id",
			instanceID: "pallets__flask-4045",
			want:       "flask",
		},
		{
			name:       "namespace differs from family",
			instanceID: "pytest-dev__pytest-5103",
			want:       "pytest",
		},
		{
			name:       "hyphenated family",
			instanceID: "scikit-learn__scikit-learn-10297",
			want:       "scikit-learn",
		},
		{
			name:       "namespace equals family",
			instanceID: "django__django-11099",
			want:       "django",
		},
		{
			name:       "missing separator",
			instanceID: "flask-4045",
			wantErr:    true,
		},
		{
			name:       "empty suffix after separator",
			instanceID: "pallets__",
			wantErr:    true,
		},
		{
			name:       "missing task number",
			instanceID: "pallets__flask",
			wantErr:    true,
		},
		{
			name:       "non-numeric task number",
			instanceID: "pallets__flask-abc",
			wantErr:    true,
		},
		{
			name:       "trailing dash",
			instanceID: "pallets__flask-",
			wantErr:    true,
		},
		{
			name:       "empty id",
			instanceID: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepoFamily(tt.instanceID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RepoFamily(%q) error = %v, wantErr %v", tt.instanceID, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("RepoFamily(%q) = %q, want %q", tt.instanceID, got, tt.want)
			}
		})
	}
}
