package github

import "fmt"

// PublicKey is the repository key used to seal Actions secrets
type PublicKey struct {
	KeyID string `json:"key_id"`
	Key   string `json:"key"`
}

// EncryptedSecret is the request body for creating or updating a secret
type EncryptedSecret struct {
	EncryptedValue string `json:"encrypted_value"`
	KeyID          string `json:"key_id"`
}

// StatusError is returned when the API answers with an unexpected status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned %d for %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
}
