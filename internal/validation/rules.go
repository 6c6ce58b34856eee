// Package validation provides custom validation rules for the application.
package validation

import (
	"math"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sisyphus/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// FitsLengthPrefix validates that a string's byte length can be encoded in the
// 4-byte big-endian length prefix used by derivation messages. Empty strings pass.
var FitsLengthPrefix = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_length_prefix_type", "must be a string")
	}
	if uint64(len(s)) > math.MaxUint32 {
		return validation.NewError("validation_length_prefix", "must not exceed 4294967295 bytes")
	}
	return nil
})
