package config

import "os"

// Environment is the runtime mode the server was started in, read from
// the ENV variable.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment reads ENV, defaulting to development.
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case string(Production):
		return Production
	case string(Test):
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether the server runs in production mode.
func IsProduction() bool {
	return GetEnvironment() == Production
}

// IsTest reports whether the server runs in test mode.
func IsTest() bool {
	return GetEnvironment() == Test
}
