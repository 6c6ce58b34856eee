package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sisyphus/internal/validation"
)

// GenerateInput contains the parameters for deriving one site password.
//
// Empty Identity and Passphrase values are accepted: the scheme is defined for any byte
// sequence, and the resulting password is only as strong as the passphrase supplied.
type GenerateInput struct {
	Identity     string       `json:"identity"`
	Passphrase   string       `json:"-"`
	SiteName     string       `json:"site_name"`
	Counter      *uint32      `json:"counter,omitempty"` // nil means DefaultCounter
	PasswordType PasswordType `json:"password_type"`
}

// SiteCounter returns the counter to derive with, applying DefaultCounter when unset.
func (i *GenerateInput) SiteCounter() uint32 {
	if i.Counter == nil {
		return DefaultCounter
	}
	return *i.Counter
}

// Validate checks if the generate input is valid.
func (i *GenerateInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Identity, customValidation.FitsLengthPrefix),
		validation.Field(&i.Passphrase, customValidation.FitsLengthPrefix),
		validation.Field(&i.SiteName, customValidation.FitsLengthPrefix),
		validation.Field(&i.PasswordType, validation.Required),
	)
	return customValidation.WrapValidationError(err)
}

// GenerateOutput is the result of a site password derivation.
type GenerateOutput struct {
	SiteName     string       `json:"site_name"`
	Counter      uint32       `json:"counter"`
	PasswordType PasswordType `json:"password_type"`
	Template     string       `json:"template"`
	Password     string       `json:"password"`
	KeyID        string       `json:"key_id"`
}
