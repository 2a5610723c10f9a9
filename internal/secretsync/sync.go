package secretsync

import (
	"fmt"

	"github.com/stuttgart-things/ghsecrets/internal/envfile"
	"github.com/stuttgart-things/ghsecrets/internal/github"
)

// Syncer seals and publishes secret definitions one after another
type Syncer struct {
	Keys      KeyFetcher
	Sealer    Sealer
	Publisher Publisher
	Printer   Printer

	// DryRun seals every value but publishes nothing
	DryRun bool
}

// Sync fetches the repository public key once, then seals and publishes
// each entry in order. A failure to fetch the key is returned and nothing
// else is attempted. Failures of individual entries are recorded in the
// summary and never stop the loop.
func (s *Syncer) Sync(owner, repo string, entries []envfile.Entry) (*Summary, error) {
	key, err := s.Keys.GetPublicKey(owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching public key for %s/%s: %w", owner, repo, err)
	}
	s.printer().KeyFetched(owner, repo, key)

	summary := &Summary{
		Owner:   owner,
		Repo:    repo,
		KeyID:   key.KeyID,
		Results: make([]Result, 0, len(entries)),
	}

	for _, entry := range entries {
		summary.Results = append(summary.Results, s.syncEntry(owner, repo, key, entry))
	}

	return summary, nil
}

func (s *Syncer) syncEntry(owner, repo string, key *github.PublicKey, entry envfile.Entry) Result {
	result := Result{Name: entry.Name, Line: entry.Line}
	p := s.printer()

	if !entry.Valid() {
		result.Status = StatusSkipped
		result.Err = entry.Err
		p.Skipped(entry.Line, entry.Raw, entry.Err)
		return result
	}

	p.Setting(entry.Name)

	sealed, err := s.Sealer.Seal(key.Key, entry.Value)
	if err != nil {
		result.Status = StatusFailed
		result.Err = fmt.Errorf("sealing: %w", err)
		p.Failed(entry.Name, result.Err)
		return result
	}

	if s.DryRun {
		result.Status = StatusDryRun
		p.DryRun(entry.Name)
		return result
	}

	status, err := s.Publisher.PutSecret(owner, repo, entry.Name, github.EncryptedSecret{
		EncryptedValue: sealed,
		KeyID:          key.KeyID,
	})
	result.StatusCode = status
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		p.Failed(entry.Name, err)
		return result
	}

	result.Status = StatusSet
	p.Set(entry.Name, status)
	return result
}

func (s *Syncer) printer() Printer {
	if s.Printer == nil {
		return nopPrinter{}
	}
	return s.Printer
}

type nopPrinter struct{}

func (nopPrinter) KeyFetched(string, string, *github.PublicKey) {}
func (nopPrinter) Skipped(int, string, error)                   {}
func (nopPrinter) Setting(string)                               {}
func (nopPrinter) Set(string, int)                              {}
func (nopPrinter) DryRun(string)                                {}
func (nopPrinter) Failed(string, error)                         {}
