package domain

import (
	"github.com/allisson/sisyphus/internal/errors"
)

// Derivation error definitions.
//
// Only ErrInvalidPasswordType and ErrInputTooLong can be caused by a caller. The
// remaining errors wrap errors.ErrInternal: they signal a defect in fixed parameters or
// template tables and must be treated as fatal.
var (
	// ErrInvalidPasswordType indicates an unknown password type name or value.
	ErrInvalidPasswordType = errors.Wrap(errors.ErrInvalidInput, "invalid password type")

	// ErrInputTooLong indicates a string whose byte length does not fit the 32-bit length
	// prefix used by the salt and seed messages.
	ErrInputTooLong = errors.Wrap(errors.ErrInvalidInput, "input exceeds maximum length")

	// ErrInvalidParameters indicates the key derivation function rejected its fixed cost
	// or length parameters.
	ErrInvalidParameters = errors.Wrap(errors.ErrInternal, "invalid key derivation parameters")

	// ErrUnknownTemplateClass indicates a template contains a class character with no
	// character group. Rendering never skips such a character.
	ErrUnknownTemplateClass = errors.Wrap(errors.ErrInternal, "unknown template class")

	// ErrInvalidTemplateTable indicates a template table is empty or holds a template
	// longer than MaxTemplateLength.
	ErrInvalidTemplateTable = errors.Wrap(errors.ErrInternal, "invalid template table")
)
