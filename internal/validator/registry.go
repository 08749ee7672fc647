package validator

import (
	"os/exec"

	"brutefile/internal/format"
)

// Registry resolves a detected format kind to a validator bound to one
// target file. Availability of optional backing tools is probed once
// when the registry is built, not deep inside an attempt.
type Registry struct {
	officeTool string
	officeOK   bool
}

// Option tweaks registry construction.
type Option func(*Registry)

// WithOfficeTool overrides the external tool used for office documents.
func WithOfficeTool(path string) Option {
	return func(r *Registry) { r.officeTool = path }
}

// NewRegistry probes optional dependencies and returns a registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{officeTool: defaultOfficeTool}
	for _, opt := range opts {
		opt(r)
	}
	if path, err := exec.LookPath(r.officeTool); err == nil {
		r.officeTool = path
		r.officeOK = true
	}
	return r
}

// Resolve returns a validator for the target bound to the given kind.
// Unknown kinds yield ErrUnsupportedFormat; kinds whose backing tool
// was not found at probe time yield *MissingDependencyError. Factories
// pre-read the target, so an unreadable file fails here, before any
// worker spawns.
func (r *Registry) Resolve(path string, kind format.Kind) (Validator, error) {
	switch kind {
	case format.Zip:
		return newZipValidator(path)
	case format.Rar:
		return newRarValidator(path)
	case format.SevenZip:
		return newSevenZipValidator(path)
	case format.PDF:
		return newPDFValidator(path)
	case format.KeePass:
		return newKeePassValidator(path)
	case format.SSHKey:
		return newSSHValidator(path)
	case format.Office:
		if !r.officeOK {
			return nil, &MissingDependencyError{
				Kind: format.Office,
				Hint: "install " + defaultOfficeTool + ", e.g. pip install msoffcrypto-tool",
			}
		}
		return newOfficeValidator(path, r.officeTool)
	default:
		return nil, ErrUnsupportedFormat
	}
}
