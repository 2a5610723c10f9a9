package repo

import (
	"fmt"
	"net/url"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote used to detect the GitHub repository
const DefaultRemote = "origin"

// Repo wraps a local git repository
type Repo struct {
	Root string
	repo *git.Repository
}

// Open opens the git repository containing path, searching parent directories
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repo{
		Root: worktree.Filesystem.Root(),
		repo: repo,
	}, nil
}

// FindRoot returns the worktree root of the repository containing startPath
func FindRoot(startPath string) (string, error) {
	r, err := Open(startPath)
	if err != nil {
		return "", err
	}
	return r.Root, nil
}

// RemoteSlug returns the GitHub owner and repository name of the given remote
func (r *Repo) RemoteSlug(remoteName string) (string, string, error) {
	if remoteName == "" {
		remoteName = DefaultRemote
	}

	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", "", fmt.Errorf("looking up remote %q: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("remote %q has no URL", remoteName)
	}

	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repository name from a git remote URL.
// HTTPS, ssh:// and scp-like (git@host:owner/repo.git) forms are accepted.
func ParseRemoteURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty remote URL")
	}

	var path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", fmt.Errorf("parsing remote URL: %w", err)
		}
		path = u.Path
	} else {
		// scp-like syntax: [user@]host:owner/repo
		_, after, found := strings.Cut(raw, ":")
		if !found {
			return "", "", fmt.Errorf("unsupported remote URL: %s", raw)
		}
		path = after
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("remote URL does not name owner/repo: %s", raw)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}
