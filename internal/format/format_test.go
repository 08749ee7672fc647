package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestDetectByExtension(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]Kind{
		"db.kdbx":      KeePass,
		"backup.ZIP":   Zip,
		"app.jar":      Zip,
		"app.war":      Zip,
		"archive.rar":  Rar,
		"archive.7z":   SevenZip,
		"report.pdf":   PDF,
		"letter.docx":  Office,
		"sheet.xlsx":   Office,
		"slides.pptx":  Office,
		"server.pem":   SSHKey,
		"server.key":   SSHKey,
		"something.xy": Unknown,
	}
	for name, want := range cases {
		path := touch(t, dir, name, nil)
		got, err := Detect(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestDetectSSHKeyByBaseName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"id_rsa", "id_rsa.old"} {
		path := touch(t, dir, name, nil)
		got, err := Detect(path)
		require.NoError(t, err)
		assert.Equal(t, SSHKey, got, name)
	}
}

func TestDetectBySignature(t *testing.T) {
	dir := t.TempDir()
	cases := map[Kind][]byte{
		Zip:      {0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00},
		Rar:      {0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00},
		SevenZip: {0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C},
		PDF:      []byte("%PDF-1.7\n"),
	}
	for want, magic := range cases {
		path := touch(t, dir, "noext_"+want.String(), magic)
		got, err := Detect(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, want.String())
	}
}

func TestDetectUnknown(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "blob", []byte("nothing recognizable here"))
	got, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Unknown, got)
}

func TestDetectMissingFile(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
