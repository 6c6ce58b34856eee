package domain

import (
	"fmt"
)

// Character groups, indexed by template class character. The strings and their ordering
// are fixed by the published algorithm.
const (
	groupUpperVowel     = "AEIOU"
	groupUpperConsonant = "BCDFGHJKLMNPQRSTVWXYZ"
	groupLowerVowel     = "aeiou"
	groupLowerConsonant = "bcdfghjklmnpqrstvwxyz"
	groupUpperAlpha     = "AEIOUBCDFGHJKLMNPQRSTVWXYZ"
	groupAlpha          = "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz"
	groupNumeric        = "0123456789"
	groupOther          = "@&%?,=[]_:-+*$#!'^~;()/."
	groupAny            = "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()"
)

// TemplateClasses lists every template class character that has a character group.
const TemplateClasses = "VCvcAanox"

// CharacterGroup returns the ordered characters a template class expands to.
func CharacterGroup(class byte) (string, error) {
	switch class {
	case 'V':
		return groupUpperVowel, nil
	case 'C':
		return groupUpperConsonant, nil
	case 'v':
		return groupLowerVowel, nil
	case 'c':
		return groupLowerConsonant, nil
	case 'A':
		return groupUpperAlpha, nil
	case 'a':
		return groupAlpha, nil
	case 'n':
		return groupNumeric, nil
	case 'o':
		return groupOther, nil
	case 'x':
		return groupAny, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplateClass, class)
	}
}

var (
	maximumTemplates = [...]string{"anoxxxxxxxxxxxxxxxxx", "axxxxxxxxxxxxxxxxxno"}
	longTemplates    = [...]string{
		"CvcvnoCvcvCvcv", "CvcvCvcvnoCvcv", "CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv", "CvccCvcvnoCvcv", "CvccCvcvCvcvno",
		"CvcvnoCvccCvcv", "CvcvCvccnoCvcv", "CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc", "CvcvCvcvnoCvcc", "CvcvCvcvCvccno",
		"CvccnoCvccCvcv", "CvccCvccnoCvcv", "CvccCvccCvcvno",
		"CvcvnoCvccCvcc", "CvcvCvccnoCvcc", "CvcvCvccCvccno",
		"CvccnoCvcvCvcc", "CvccCvcvnoCvcc", "CvccCvcvCvccno",
	}
	mediumTemplates = [...]string{"CvcnoCvc", "CvcCvcno"}
	shortTemplates  = [...]string{"Cvcn"}
	basicTemplates  = [...]string{"aaanaaan", "aannaaan", "aaannaaa"}
	pinTemplates    = [...]string{"nnnn"}
)

// ValidateTemplate checks that a template fits a seed and uses only known classes.
func ValidateTemplate(template string) error {
	if template == "" || len(template) > MaxTemplateLength {
		return fmt.Errorf(
			"%w: template %q must be 1..%d characters",
			ErrInvalidTemplateTable,
			template,
			MaxTemplateLength,
		)
	}
	for i := 0; i < len(template); i++ {
		if _, err := CharacterGroup(template[i]); err != nil {
			return fmt.Errorf("%w in template %q at position %d", err, template, i)
		}
	}
	return nil
}

// ValidateTemplateTables checks every template table reachable from PasswordTypes.
func ValidateTemplateTables() error {
	for _, t := range PasswordTypes() {
		templates, err := t.Templates()
		if err != nil {
			return err
		}
		if len(templates) == 0 {
			return fmt.Errorf("%w: %s has no templates", ErrInvalidTemplateTable, t)
		}
		for _, template := range templates {
			if err := ValidateTemplate(template); err != nil {
				return fmt.Errorf("%s: %w", t, err)
			}
		}
	}
	return nil
}
