package validator

import (
	"bytes"
	"os"

	"github.com/tobischo/gokeepasslib/v3"

	"brutefile/internal/format"
)

// keePassValidator checks candidates against a KeePass kdbx database.
// A wrong master password fails header HMAC verification during decode.
type keePassValidator struct {
	path string
	data []byte
}

func newKeePassValidator(path string) (*keePassValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &keePassValidator{path: path, data: data}, nil
}

func (v *keePassValidator) Kind() format.Kind { return format.KeePass }

func (v *keePassValidator) Attempt(candidate string) error {
	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(candidate)
	if err := gokeepasslib.NewDecoder(bytes.NewReader(v.data)).Decode(db); err != nil {
		return ErrWrongPassword
	}
	return nil
}
