package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// IsStdout reports whether path names standard output.
func IsStdout(path string) bool {
	return path == "" || path == "-"
}

// Write sends data to path, or to stdout when IsStdout(path). A file is
// written to a temporary sibling and renamed over path, so readers never
// see a partial header and a failed write leaves the old file in place.
func Write(path string, data []byte, stdout io.Writer) error {
	if IsStdout(path) {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := renameio.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
