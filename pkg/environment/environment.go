package environment

import (
	"fmt"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a raw value (as found in APP_ENV) to an Environment.
// Short aliases "dev", "stage" and "prod" are accepted. Empty input means Development.
func Parse(raw string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, raw)
	}
}

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool { return e == Staging }

// UnmarshalText lets config loaders decode APP_ENV straight into an Environment.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
