package report

// SyncReport represents a sync report file written after a run
type SyncReport struct {
	APIVersion string        `yaml:"apiVersion" json:"apiVersion"`
	Kind       string        `yaml:"kind" json:"kind"`
	Repository string        `yaml:"repository" json:"repository"`
	KeyID      string        `yaml:"keyId" json:"keyId"`
	SyncedAt   string        `yaml:"syncedAt" json:"syncedAt"`
	DryRun     bool          `yaml:"dryRun,omitempty" json:"dryRun,omitempty"`
	Secrets    []SecretEntry `yaml:"secrets" json:"secrets"`
}

// SecretEntry describes the outcome for a single secret. Values are never recorded.
type SecretEntry struct {
	Name       string `yaml:"name" json:"name"`
	Line       int    `yaml:"line" json:"line"`
	Status     string `yaml:"status" json:"status"`
	StatusCode int    `yaml:"statusCode,omitempty" json:"statusCode,omitempty"`
	Error      string `yaml:"error,omitempty" json:"error,omitempty"`
}
