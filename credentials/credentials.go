// Package credentials lists the profiles declared in the shared credentials
// file.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
)

var ErrCredentialsFileMissing = errors.New("credentials file missing")

// Path returns the shared credentials file location, honouring
// AWS_SHARED_CREDENTIALS_FILE.
func Path() string {
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		return path
	}
	return config.DefaultSharedCredentialsFilename()
}

// Profiles returns the bracketed section names of the file at path, in file
// order.
func Profiles(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsFileMissing, path)
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	defer file.Close()

	var profiles []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		if name := strings.TrimSpace(line[1 : len(line)-1]); name != "" {
			profiles = append(profiles, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	return profiles, nil
}
