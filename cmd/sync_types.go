package cmd

import (
	"io"
	"os"
)

// SyncConfig holds configuration for the sync command
type SyncConfig struct {
	// Target repository
	Owner string
	Repo  string
	Token string

	// API configuration
	APIUrl string

	// Input and output
	File       string
	ReportPath string
	DryRun     bool

	// Remote used to prefill owner/repo in interactive mode
	Remote string

	// Mode control
	Interactive bool

	// Output streams, default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (c *SyncConfig) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *SyncConfig) stderr() io.Writer {
	if c.ErrOut == nil {
		return os.Stderr
	}
	return c.ErrOut
}

func (c *SyncConfig) repository() string {
	return c.Owner + "/" + c.Repo
}
