package gen

import (
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile overwrites path with content in a single call. The parent
// directory must already exist.
func WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return &IOError{Path: path, Err: err}
	}

	return nil
}
