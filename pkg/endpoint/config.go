// Package endpoint builds request URLs for the Dodo Payments API.
//
// It resolves the base URL from a validated Config and fills operation path
// templates from typed parameters. Sending requests is left to the caller.
package endpoint

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid endpoint config")
	// ErrMissingParam is returned when a required path parameter is empty.
	ErrMissingParam = errors.New("missing required parameter")
	// ErrUnknownOperation is returned by Lookup for names it does not know.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Environment selects the API host.
type Environment string

const (
	LiveMode Environment = "live_mode"
	TestMode Environment = "test_mode"
)

var hosts = map[Environment]string{
	LiveMode: "https://live.dodopayments.com",
	TestMode: "https://test.dodopayments.com",
}

func (e Environment) IsKnown() bool {
	_, ok := hosts[e]
	return ok
}

// Host returns the base URL of the environment. The empty environment is
// live mode.
func (e Environment) Host() string {
	if e == "" {
		return hosts[LiveMode]
	}
	return hosts[e]
}

func (e Environment) String() string {
	return string(e)
}

// Config carries the connection settings a transport needs.
type Config struct {
	BearerToken string      `validate:"required"`
	Environment Environment `validate:"omitempty,oneof=live_mode test_mode"`
	// BaseURL overrides the environment host when set.
	BaseURL string `validate:"omitempty,url"`
}

// Validate checks the config with go-playground/validator.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ResolveBaseURL returns BaseURL when set, otherwise the environment host.
func (c Config) ResolveBaseURL() (*url.URL, error) {
	raw := c.BaseURL
	if raw == "" {
		raw = c.Environment.Host()
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %w", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q is not absolute", ErrInvalidConfig, raw)
	}
	return u, nil
}
