// Package vcffile writes exported vCard documents to disk.
package vcffile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultName = "contacts.vcf"

var ErrNothingToExport = errors.New("no contacts to export")

// Write stores doc at path and returns the path written. An empty path
// means DefaultName in the working directory; a directory gets DefaultName
// inside it. The file is replaced atomically. An empty doc is refused with
// ErrNothingToExport.
func Write(path, doc string) (string, error) {
	if doc == "" {
		return "", ErrNothingToExport
	}
	if path == "" {
		path = DefaultName
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, DefaultName)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kontakclip-*.vcf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(doc); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	return path, nil
}
