// Package config locates the backend under test.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultEnvFile is the frontend env file that normally carries the backend address.
	DefaultEnvFile = "/app/frontend/.env"

	// DefaultEnvKey is the variable in DefaultEnvFile holding the backend's root URL.
	DefaultEnvKey = "REACT_APP_BACKEND_URL"

	// APIPath is appended to a root URL read from the env file.
	APIPath = "/api"
)

// ResolveBaseURL returns the API base URL that endpoints are appended to.
//
// An explicit URL is used exactly as given. Otherwise envKey is read from envFile, trimmed,
// and APIPath is appended to it.
func ResolveBaseURL(explicitURL, envFile, envKey string) (string, error) {
	if u := strings.TrimSpace(explicitURL); u != "" {
		return u, nil
	}
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if envKey == "" {
		envKey = DefaultEnvKey
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		return "", errors.Wrapf(err, "could not read backend URL from %s", envFile)
	}
	root := strings.TrimSpace(values[envKey])
	if root == "" {
		return "", errors.Errorf("%s does not define %s", envFile, envKey)
	}
	return strings.TrimSuffix(root, "/") + APIPath, nil
}
