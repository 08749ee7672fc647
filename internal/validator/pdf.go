package validator

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"brutefile/internal/format"
)

// pdfValidator checks candidates against an encrypted PDF by running a
// full document validation with the candidate as user password.
type pdfValidator struct {
	path string
}

func newPDFValidator(path string) (*pdfValidator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &pdfValidator{path: path}, nil
}

func (v *pdfValidator) Kind() format.Kind { return format.PDF }

func (v *pdfValidator) Attempt(candidate string) error {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = candidate
	conf.OwnerPW = candidate
	if err := api.ValidateFile(v.path, conf); err != nil {
		return ErrWrongPassword
	}
	return nil
}
