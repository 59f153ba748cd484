package versionfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// versionKeys are the property names accepted in key=value files.
var versionKeys = map[string]bool{
	"version":        true,
	"projectVersion": true,
}

// Read extracts the current version from a version file. Two layouts are
// supported: a plain file whose first non-comment line is the version, and
// a properties-style file with a version= or projectVersion= entry.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if key, value, ok := strings.Cut(line, "="); ok {
			if versionKeys[strings.TrimSpace(key)] {
				return strings.TrimSpace(value), nil
			}
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no version found in %s", path)
}
