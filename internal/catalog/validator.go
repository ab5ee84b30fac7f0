package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	shelferrors "github.com/shelfbrowse/shelfbrowse/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	entryIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("entry_id", func(fl validator.FieldLevel) bool {
			return entryIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateCatalog performs schema and cross-reference validation on the
// catalog document.
func ValidateCatalog(cat *Catalog) error {
	if cat == nil {
		return shelferrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cat); err != nil {
		return convertValidationError(err)
	}

	authors := make(map[string]struct{}, len(cat.Authors))
	for i, a := range cat.Authors {
		if _, exists := authors[a.ID]; exists {
			return shelferrors.NewValidationError(fmt.Sprintf("authors[%d].id", i), fmt.Sprintf("duplicate author id %q", a.ID), nil)
		}
		authors[a.ID] = struct{}{}
	}

	genres := make(map[string]struct{}, len(cat.Genres))
	for i, g := range cat.Genres {
		if _, exists := genres[g.ID]; exists {
			return shelferrors.NewValidationError(fmt.Sprintf("genres[%d].id", i), fmt.Sprintf("duplicate genre id %q", g.ID), nil)
		}
		genres[g.ID] = struct{}{}
	}

	books := make(map[string]struct{}, len(cat.Books))
	for i, b := range cat.Books {
		if _, exists := books[b.ID]; exists {
			return shelferrors.NewValidationError(fmt.Sprintf("books[%d].id", i), fmt.Sprintf("duplicate book id %q", b.ID), nil)
		}
		books[b.ID] = struct{}{}

		if _, ok := authors[b.Author]; !ok {
			return shelferrors.NewReferenceError("author", b.Author, nil)
		}

		for _, g := range b.Genres {
			if _, ok := genres[g]; !ok {
				return shelferrors.NewReferenceError("genre", g, nil)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return shelferrors.NewValidationError(field, msg, err)
	}

	return shelferrors.NewValidationError("catalog", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}

	return strings.Join(lowered, ".")
}
