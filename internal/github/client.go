package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint
	DefaultBaseURL = "https://api.github.com"

	// APIVersion is sent as X-GitHub-Api-Version on every request
	APIVersion = "2022-11-28"

	acceptHeader = "application/vnd.github+json"
)

// Client is the API client for GitHub Actions repository secrets
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a new secrets API client
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithHTTPClient creates a new secrets API client with a custom HTTP client
func NewClientWithHTTPClient(baseURL, token string, httpClient *http.Client) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: httpClient,
	}
}

// GetPublicKey retrieves the repository public key used to seal secrets
func (c *Client) GetPublicKey(owner, repo string) (*PublicKey, error) {
	resp, err := c.do(http.MethodGet, c.secretsURL(owner, repo, "public-key"), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var key PublicKey
	if err := json.NewDecoder(resp.Body).Decode(&key); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if key.Key == "" || key.KeyID == "" {
		return nil, fmt.Errorf("public key response is missing key or key_id")
	}

	return &key, nil
}

// PutSecret creates or replaces the named repository secret.
// It returns 201 when the secret was created and 204 when it was updated.
func (c *Client) PutSecret(owner, repo, name string, secret EncryptedSecret) (int, error) {
	body, err := json.Marshal(secret)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(http.MethodPut, c.secretsURL(owner, repo, name), body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusNoContent:
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	default:
		return resp.StatusCode, statusError(resp)
	}
}

func (c *Client) secretsURL(owner, repo, resource string) string {
	return fmt.Sprintf("%s/repos/%s/%s/actions/secrets/%s",
		c.BaseURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(resource))
}

func (c *Client) do(method, target string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &StatusError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
