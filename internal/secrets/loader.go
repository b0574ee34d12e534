// Package secrets resolves the optional bearer token some ResumeAI
// deployments require in front of the analysis API.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// LoadToken reads the analysis API token from the given file. The returned
// token is always trimmed. An empty path means no token is configured, which
// is not an error: the public endpoints do not require one.
func LoadToken(file string) (string, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return "", nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading api token from file %q: %w", file, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("api token file %q is empty", file)
	}

	return token, nil
}
