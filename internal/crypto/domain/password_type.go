package domain

import (
	"fmt"
	"strings"
)

// PasswordType selects the template table a password is rendered from.
//
// The set of types is closed; each one owns a fixed, ordered, non-empty list of
// templates. The seed's first byte picks one template from the list.
type PasswordType string

const (
	// PasswordTypeMaximum renders 20 characters from the full printable set.
	PasswordTypeMaximum PasswordType = "maximum"
	// PasswordTypeLong renders 14 pronounceable characters with one digit and one symbol.
	PasswordTypeLong PasswordType = "long"
	// PasswordTypeMedium renders 8 pronounceable characters with one digit and one symbol.
	PasswordTypeMedium PasswordType = "medium"
	// PasswordTypeShort renders 4 characters ending in a digit.
	PasswordTypeShort PasswordType = "short"
	// PasswordTypeBasic renders 8 alphanumeric characters.
	PasswordTypeBasic PasswordType = "basic"
	// PasswordTypePIN renders 4 digits.
	PasswordTypePIN PasswordType = "pin"
)

// PasswordTypes returns every password type in declaration order.
func PasswordTypes() []PasswordType {
	return []PasswordType{
		PasswordTypeMaximum,
		PasswordTypeLong,
		PasswordTypeMedium,
		PasswordTypeShort,
		PasswordTypeBasic,
		PasswordTypePIN,
	}
}

// ParsePasswordType converts a user supplied name into a PasswordType.
// Matching is case-insensitive and accepts "max" as a short form of "maximum".
func ParsePasswordType(name string) (PasswordType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "max", "maximum":
		return PasswordTypeMaximum, nil
	case "long":
		return PasswordTypeLong, nil
	case "medium":
		return PasswordTypeMedium, nil
	case "short":
		return PasswordTypeShort, nil
	case "basic":
		return PasswordTypeBasic, nil
	case "pin":
		return PasswordTypePIN, nil
	default:
		return "", fmt.Errorf(
			"%w: %q (valid options: max, long, medium, short, basic, pin)",
			ErrInvalidPasswordType,
			name,
		)
	}
}

// Validate checks if the password type is one of the known variants.
func (t PasswordType) Validate() error {
	_, err := t.table()
	return err
}

// String returns the string representation of the password type.
func (t PasswordType) String() string {
	return string(t)
}

// Templates returns a copy of the template table for the password type.
func (t PasswordType) Templates() ([]string, error) {
	table, err := t.table()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), table...), nil
}

// Template returns the template selected by the first byte of the seed.
func (t PasswordType) Template(seed *TemplateSeed) (string, error) {
	table, err := t.table()
	if err != nil {
		return "", err
	}
	if len(table) == 0 {
		return "", fmt.Errorf("%w: %s has no templates", ErrInvalidTemplateTable, t)
	}
	return table[int(seed[0])%len(table)], nil
}

func (t PasswordType) table() ([]string, error) {
	switch t {
	case PasswordTypeMaximum:
		return maximumTemplates[:], nil
	case PasswordTypeLong:
		return longTemplates[:], nil
	case PasswordTypeMedium:
		return mediumTemplates[:], nil
	case PasswordTypeShort:
		return shortTemplates[:], nil
	case PasswordTypeBasic:
		return basicTemplates[:], nil
	case PasswordTypePIN:
		return pinTemplates[:], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPasswordType, string(t))
	}
}
