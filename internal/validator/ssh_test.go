package validator

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEncryptedKey(t *testing.T, passphrase string) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block, err := x509.EncryptPEMBlock( //nolint:staticcheck // legacy PEM keys are exactly what gets cracked
		rand.Reader, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key),
		[]byte(passphrase), x509.PEMCipherAES128,
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return path
}

func TestSSHValidatorAcceptsCorrectPassphrase(t *testing.T) {
	v, err := newSSHValidator(writeEncryptedKey(t, "swordfish"))
	require.NoError(t, err)

	assert.NoError(t, v.Attempt("swordfish"))
}

func TestSSHValidatorRejectsWrongPassphrase(t *testing.T) {
	v, err := newSSHValidator(writeEncryptedKey(t, "swordfish"))
	require.NoError(t, err)

	assert.ErrorIs(t, v.Attempt("tuna"), ErrWrongPassword)
}

func TestSSHValidatorRejectsUnprotectedKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	path := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))

	_, err = newSSHValidator(path)
	var sErr *StructuralError
	assert.ErrorAs(t, err, &sErr)
}

func TestSSHValidatorRejectsNonPEMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(path, []byte("binary junk"), 0o600))

	_, err := newSSHValidator(path)
	var sErr *StructuralError
	assert.ErrorAs(t, err, &sErr)
}
