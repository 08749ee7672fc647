package validator

import (
	"errors"
	"os"
	"os/exec"

	"brutefile/internal/format"
)

const defaultOfficeTool = "msoffcrypto-tool"

// officeValidator shells out to msoffcrypto-tool for password-protected
// OOXML documents; no Go library decrypts these. One process per
// attempt, so attempts are naturally reentrant.
type officeValidator struct {
	path string
	tool string
}

func newOfficeValidator(path, tool string) (*officeValidator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &officeValidator{path: path, tool: tool}, nil
}

func (v *officeValidator) Kind() format.Kind { return format.Office }

func (v *officeValidator) Attempt(candidate string) error {
	cmd := exec.Command(v.tool, v.path, "--test", "-p", candidate)
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ErrWrongPassword
	}
	// the tool itself failed to run
	return structural(v.path, err)
}
