package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIVersion = "ghsecrets.sthings.io/v1alpha1"
	DefaultKind       = "SyncReport"
)

// Load reads and parses a sync report file
func Load(path string) (*SyncReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}

	var rep SyncReport
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}

	return &rep, nil
}

// Save writes a SyncReport to a YAML file, creating parent directories
func Save(path string, rep *SyncReport) error {
	if rep.APIVersion == "" {
		rep.APIVersion = DefaultAPIVersion
	}
	if rep.Kind == "" {
		rep.Kind = DefaultKind
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}

	return nil
}

// AddEntry adds a secret entry to the report.
// If an entry for the same line already exists, it is replaced.
// Names may repeat across lines; entries without a line are always appended.
func AddEntry(rep *SyncReport, entry SecretEntry) {
	if entry.Line > 0 {
		for i, e := range rep.Secrets {
			if e.Line == entry.Line {
				rep.Secrets[i] = entry
				return
			}
		}
	}
	rep.Secrets = append(rep.Secrets, entry)
}

// FindEntry returns a pointer to the last secret entry with the given name,
// or nil. With duplicate names the last one is what the remote ended up with.
func FindEntry(rep *SyncReport, name string) *SecretEntry {
	for i := len(rep.Secrets) - 1; i >= 0; i-- {
		if rep.Secrets[i].Name == name {
			return &rep.Secrets[i]
		}
	}
	return nil
}

// FilterEntries returns entries with the given status.
// An empty status is treated as a wildcard.
func FilterEntries(rep *SyncReport, status string) []SecretEntry {
	var result []SecretEntry
	for _, e := range rep.Secrets {
		if status != "" && e.Status != status {
			continue
		}
		result = append(result, e)
	}
	return result
}

// NewReport creates an empty SyncReport for the given owner/repo
func NewReport(repository string) *SyncReport {
	return &SyncReport{
		APIVersion: DefaultAPIVersion,
		Kind:       DefaultKind,
		Repository: repository,
		Secrets:    []SecretEntry{},
	}
}
