// Package contact forwards contact-form submissions to the external form
// relay. One attempt per submission, no retry, no state.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrRelayRejected = errors.New("contact relay rejected the submission")

// Submission is one contact-form message from a visitor.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Service posts submissions to the relay endpoint.
type Service struct {
	accessKey string
	endpoint  string
	client    *http.Client
}

// NewService builds the relay client. The client timeout is the only bound on
// a submission attempt.
func NewService(accessKey, endpoint string) *Service {
	return &Service{
		accessKey: accessKey,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Send performs exactly one relay call and reports whether the relay accepted
// the submission.
func (s *Service) Send(ctx context.Context, sub Submission) error {
	payload := map[string]string{
		"access_key": s.accessKey,
		"name":       sub.Name,
		"email":      sub.Email,
		"message":    sub.Message,
		"subject":    fmt.Sprintf("Portfolio Contact from %s", sub.Name),
		"from_name":  "Portfolio Contact Form",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrRelayRejected, result.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}

	return nil
}
