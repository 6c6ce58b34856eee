package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/sisyphus/internal/errors"
)

func TestCharacterGroup(t *testing.T) {
	tests := []struct {
		class byte
		group string
	}{
		{'V', "AEIOU"},
		{'C', "BCDFGHJKLMNPQRSTVWXYZ"},
		{'v', "aeiou"},
		{'c', "bcdfghjklmnpqrstvwxyz"},
		{'A', "AEIOUBCDFGHJKLMNPQRSTVWXYZ"},
		{'a', "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz"},
		{'n', "0123456789"},
		{'o', "@&%?,=[]_:-+*$#!'^~;()/."},
		{'x', "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()"},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			group, err := CharacterGroup(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.group, group)
		})
	}

	t.Run("every class is covered", func(t *testing.T) {
		assert.Len(t, TemplateClasses, len(tests))
	})
}

func TestCharacterGroup_UnknownClass(t *testing.T) {
	for _, class := range []byte{'X', 'N', ' ', '1', 0} {
		group, err := CharacterGroup(class)
		assert.Empty(t, group)
		assert.ErrorIs(t, err, ErrUnknownTemplateClass)
		assert.ErrorIs(t, err, errors.ErrInternal)
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "valid", template: "CvcnoCvc"},
		{name: "max length", template: strings.Repeat("x", MaxTemplateLength)},
		{name: "empty", template: "", wantErr: ErrInvalidTemplateTable},
		{name: "too long", template: strings.Repeat("x", MaxTemplateLength+1), wantErr: ErrInvalidTemplateTable},
		{name: "unknown class", template: "CvcZ", wantErr: ErrUnknownTemplateClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.template)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTemplateTables(t *testing.T) {
	require.NoError(t, ValidateTemplateTables())
}
