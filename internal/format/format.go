// Package format detects the container family of a target file.
// Detection is a pure lookup on the file extension with a magic-byte
// fallback; it never attempts a trial decryption.
package format

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Kind is the detected container family of a target file.
type Kind int

const (
	Unknown Kind = iota
	KeePass
	Zip
	Rar
	SevenZip
	PDF
	Office
	SSHKey
)

func (k Kind) String() string {
	switch k {
	case KeePass:
		return "kdbx"
	case Zip:
		return "zip"
	case Rar:
		return "rar"
	case SevenZip:
		return "7z"
	case PDF:
		return "pdf"
	case Office:
		return "office"
	case SSHKey:
		return "ssh"
	default:
		return "unknown"
	}
}

// extension table, matches the documented CLI surface
var byExtension = map[string]Kind{
	".kdbx": KeePass,
	".zip":  Zip,
	".jar":  Zip,
	".war":  Zip,
	".rar":  Rar,
	".7z":   SevenZip,
	".pdf":  PDF,
	".docx": Office,
	".xlsx": Office,
	".pptx": Office,
	".ssh":  SSHKey,
	".pem":  SSHKey,
	".key":  SSHKey,
}

// magic-byte extensions reported by filetype that we can map to a Kind
var bySignature = map[string]Kind{
	"zip": Zip,
	"rar": Rar,
	"7z":  SevenZip,
	"pdf": PDF,
}

// Detect returns the format kind for path. Extension wins; for files
// with an unrecognized extension the first 261 bytes are sniffed for a
// known container signature. An unreadable file during sniffing is
// reported as an error so the run can abort before any worker spawns.
func Detect(path string) (Kind, error) {
	base := strings.ToLower(filepath.Base(path))
	if base == "id_rsa" || strings.HasPrefix(base, "id_rsa.") {
		return SSHKey, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := byExtension[ext]; ok {
		return kind, nil
	}

	t, err := filetype.MatchFile(path)
	if err != nil {
		return Unknown, err
	}
	if kind, ok := bySignature[t.Extension]; ok {
		return kind, nil
	}
	return Unknown, nil
}
