package validator

import (
	"bytes"
	"io"
	"os"

	"github.com/nwaples/rardecode"

	"brutefile/internal/format"
)

// rarValidator checks candidates against an encrypted rar archive.
// Like the zip validator it holds the raw archive bytes and builds a
// fresh reader per attempt.
type rarValidator struct {
	path string
	data []byte
}

func newRarValidator(path string) (*rarValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &rarValidator{path: path, data: data}, nil
}

func (v *rarValidator) Kind() format.Kind { return format.Rar }

// Attempt walks the archive to EOF. Header-encrypted archives fail at
// reader construction with the wrong password; file-encrypted archives
// fail on entry read with a checksum error.
func (v *rarValidator) Attempt(candidate string) error {
	r, err := rardecode.NewReader(bytes.NewReader(v.data), candidate)
	if err != nil {
		return ErrWrongPassword
	}
	for {
		_, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ErrWrongPassword
		}
		if _, err := io.Copy(io.Discard, r); err != nil {
			return ErrWrongPassword
		}
	}
}
