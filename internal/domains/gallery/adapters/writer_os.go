package adapters

import (
	"os"

	"github.com/imgreport/imgreport/internal/platform/errors"
)

type OSPageWriter struct{}

func NewOSPageWriter() OSPageWriter {
	return OSPageWriter{}
}

func (OSPageWriter) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(errors.KindIO, "failed to create directory "+dir, err)
	}
	return nil
}

func (OSPageWriter) WritePage(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.New(errors.KindIO, "failed to write "+path, err)
	}
	return nil
}
