package responder

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a responder failure into the categories the conversation
// engine can explain to the visitor.
type Kind string

const (
	// KindConfigMissing covers credential problems, including entering remote
	// mode without a usable API key.
	KindConfigMissing Kind = "config_missing"
	// KindQuotaOrBilling covers provider messages about exhausted quota or
	// billing issues.
	KindQuotaOrBilling Kind = "quota_or_billing"
	// KindRateLimited covers provider throttling.
	KindRateLimited Kind = "rate_limited"
	// KindProviderGeneric is any other provider failure.
	KindProviderGeneric Kind = "provider_generic"
)

// Error is a classified responder failure carrying the provider's message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("responder: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("responder: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps err into an Error with a Kind inferred from the provider
// message. Checked in the same order the site's widget checked them: key
// problems first, then quota/billing, then throttling.
func Classify(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	msg := strings.ToLower(err.Error())

	kind := KindProviderGeneric
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401"):
		kind = KindConfigMissing
	case strings.Contains(msg, "quota") || strings.Contains(msg, "billing"):
		kind = KindQuotaOrBilling
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "rate_limit") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "429"):
		kind = KindRateLimited
	}

	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf returns the Kind carried by err, defaulting to KindProviderGeneric
// for unclassified failures.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindProviderGeneric
}
