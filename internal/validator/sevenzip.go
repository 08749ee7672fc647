package validator

import (
	"errors"
	"io"
	"os"

	"github.com/bodgit/sevenzip"

	"brutefile/internal/format"
)

// sevenZipValidator checks candidates against a 7z archive. sevenzip
// opens from a path, so the factory only verifies the file is there;
// each attempt re-opens the archive independently.
type sevenZipValidator struct {
	path string
}

func newSevenZipValidator(path string) (*sevenZipValidator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &sevenZipValidator{path: path}, nil
}

func (v *sevenZipValidator) Kind() format.Kind { return format.SevenZip }

func (v *sevenZipValidator) Attempt(candidate string) error {
	r, err := sevenzip.OpenReaderWithPassword(v.path, candidate)
	if err != nil {
		// header-encrypted archive, wrong password fails the open
		return ErrWrongPassword
	}
	defer r.Close()

	if len(r.File) == 0 {
		return structural(v.path, errors.New("archive has no entries"))
	}
	rc, err := r.File[0].Open()
	if err != nil {
		return ErrWrongPassword
	}
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return ErrWrongPassword
	}
	return nil
}
