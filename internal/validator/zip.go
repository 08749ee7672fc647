package validator

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/yeka/zip"

	"brutefile/internal/format"
)

// zipValidator checks candidates against an encrypted zip/jar/war
// archive. The archive is read into memory once; every attempt opens a
// fresh reader over the shared bytes, so attempts are reentrant-safe.
type zipValidator struct {
	path string
	data []byte
}

func newZipValidator(path string) (*zipValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, structural(path, err)
	}
	encrypted := false
	for _, f := range r.File {
		if f.IsEncrypted() {
			encrypted = true
			break
		}
	}
	if !encrypted {
		return nil, structural(path, errors.New("archive has no encrypted entries"))
	}
	return &zipValidator{path: path, data: data}, nil
}

func (v *zipValidator) Kind() format.Kind { return format.Zip }

// Attempt decrypts the first encrypted entry in full. A wrong password
// shows up as an open error (AES auth) or a read/CRC error (ZipCrypto).
func (v *zipValidator) Attempt(candidate string) error {
	r, err := zip.NewReader(bytes.NewReader(v.data), int64(len(v.data)))
	if err != nil {
		return structural(v.path, err)
	}
	for _, f := range r.File {
		if !f.IsEncrypted() {
			continue
		}
		f.SetPassword(candidate)
		rc, err := f.Open()
		if err != nil {
			return ErrWrongPassword
		}
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return ErrWrongPassword
		}
		return nil
	}
	return structural(v.path, errors.New("archive has no encrypted entries"))
}
