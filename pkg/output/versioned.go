package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// counterFile holds the number of the next render in an output directory
const counterFile = ".n.txt"

// NextVersionedPath reserves the next render number in dir and returns
// <dir>/<prefix>-<n>.<ext>. The counter starts at 0 and is created, along with dir, when missing.
func NextVersionedPath(dir, prefix, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	counterPath := filepath.Join(dir, counterFile)
	n := 0
	data, err := os.ReadFile(counterPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return "", fmt.Errorf("reading render counter: %w", err)
	default:
		n, err = strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil || n < 0 {
			return "", fmt.Errorf("render counter %s is corrupt: %q", counterPath, strings.TrimSpace(string(data)))
		}
	}

	if err := os.WriteFile(counterPath, []byte(strconv.Itoa(n+1)), 0644); err != nil {
		return "", fmt.Errorf("updating render counter: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%d.%s", prefix, n, ext)), nil
}
