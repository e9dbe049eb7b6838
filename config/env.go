package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from CI and ENV.
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := strings.ToLower(os.Getenv("ENV")); env {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether the environment is production
func (e Environment) IsProduction() bool {
	return e == Production
}

// DebugMode reports whether gin should run in debug mode
func (e Environment) DebugMode() bool {
	return e == Development
}
