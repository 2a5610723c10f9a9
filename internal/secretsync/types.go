package secretsync

import (
	"github.com/stuttgart-things/ghsecrets/internal/github"
)

// KeyFetcher retrieves the repository public key
type KeyFetcher interface {
	GetPublicKey(owner, repo string) (*github.PublicKey, error)
}

// Sealer encrypts a plaintext value for the given base64 public key
type Sealer interface {
	Seal(publicKey, plaintext string) (string, error)
}

// SealerFunc adapts a plain function to the Sealer interface
type SealerFunc func(publicKey, plaintext string) (string, error)

// Seal calls f(publicKey, plaintext)
func (f SealerFunc) Seal(publicKey, plaintext string) (string, error) {
	return f(publicKey, plaintext)
}

// Publisher creates or replaces a single repository secret
type Publisher interface {
	PutSecret(owner, repo, name string, secret github.EncryptedSecret) (int, error)
}

// Printer receives progress events while secrets are synced
type Printer interface {
	KeyFetched(owner, repo string, key *github.PublicKey)
	Skipped(line int, raw string, err error)
	Setting(name string)
	Set(name string, statusCode int)
	DryRun(name string)
	Failed(name string, err error)
}

// Status is the outcome of a single definition
type Status string

const (
	StatusSet     Status = "set"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry-run"
)

// Result holds the outcome of syncing a single definition.
// It never carries the plaintext or sealed value.
type Result struct {
	Name       string
	Line       int
	Status     Status
	StatusCode int
	Err        error
}

// Summary holds the results of one sync run in file order
type Summary struct {
	Owner   string
	Repo    string
	KeyID   string
	Results []Result
}

// Count returns the number of results with the given status
func (s *Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any secret could not be set
func (s *Summary) Failed() bool {
	return s.Count(StatusFailed) > 0
}
