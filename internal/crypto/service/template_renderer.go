package service

import (
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/sisyphus/internal/crypto/domain"
)

// ClassTemplateRenderer renders passwords from the fixed template tables.
type ClassTemplateRenderer struct{}

// NewTemplateRenderer creates a new ClassTemplateRenderer.
func NewTemplateRenderer() *ClassTemplateRenderer {
	return &ClassTemplateRenderer{}
}

// Render picks template = table[seed[0] % len(table)] and emits, for each position i,
// G(template[i])[seed[i+1] % len(G)]. The output length always equals the template length.
//
// An unknown class character fails the whole render with ErrUnknownTemplateClass.
func (r *ClassTemplateRenderer) Render(
	seed *cryptoDomain.TemplateSeed,
	passwordType cryptoDomain.PasswordType,
) (string, error) {
	template, err := passwordType.Template(seed)
	if err != nil {
		return "", err
	}
	if len(template) > cryptoDomain.MaxTemplateLength {
		return "", fmt.Errorf(
			"%w: %s template %q exceeds %d characters",
			cryptoDomain.ErrInvalidTemplateTable,
			passwordType,
			template,
			cryptoDomain.MaxTemplateLength,
		)
	}

	var password strings.Builder
	password.Grow(len(template))
	for i := 0; i < len(template); i++ {
		group, err := cryptoDomain.CharacterGroup(template[i])
		if err != nil {
			return "", fmt.Errorf("%s template %q position %d: %w", passwordType, template, i, err)
		}
		password.WriteByte(group[int(seed[i+1])%len(group)])
	}

	return password.String(), nil
}
