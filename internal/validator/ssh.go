package validator

import (
	"encoding/pem"
	"errors"
	"os"

	"golang.org/x/crypto/ssh"

	"brutefile/internal/format"
)

// sshValidator checks candidates against an encrypted private key.
type sshValidator struct {
	path string
	data []byte
}

func newSSHValidator(path string) (*sshValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if block, _ := pem.Decode(data); block == nil {
		return nil, structural(path, errors.New("not a PEM-encoded key"))
	}
	// a key that parses without a passphrase has nothing to crack
	if _, err := ssh.ParseRawPrivateKey(data); err == nil {
		return nil, structural(path, errors.New("key is not passphrase protected"))
	}
	return &sshValidator{path: path, data: data}, nil
}

func (v *sshValidator) Kind() format.Kind { return format.SSHKey }

func (v *sshValidator) Attempt(candidate string) error {
	if _, err := ssh.ParseRawPrivateKeyWithPassphrase(v.data, []byte(candidate)); err != nil {
		return ErrWrongPassword
	}
	return nil
}
