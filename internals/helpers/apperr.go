// file: internals/helpers/apperr.go
package helper

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

/* =======================================================
   Taksonomi error core (tanpa HTTP)

   - ValidationError : referensi wajib tidak valid / field kosong,
     harus sampai ke pemanggil sebagai hasil terstruktur.
   - ErrNotFound     : target mutasi tidak ada. Mutasi tetap no-op
     (delete idempoten), sentinel ini hanya untuk query eksplisit.
   - ErrConflict     : bentrok day/time saat strict booking aktif.
   ======================================================= */

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Message: message, Fields: fields}
}

// AsValidationError shortcut untuk errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// FromValidator mengubah validator.ValidationErrors jadi map field → tag.
func FromValidator(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return NewValidationError("invalid input", nil)
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return NewValidationError("validation failed", fields)
}
