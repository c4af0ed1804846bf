package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/fluent/pkg/color"
	"github.com/alexisbeaulieu97/fluent/pkg/overflowrow"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	itemIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		// Replaces the built-in rule so the leading '#' is optional and
		// #rrggbbaa is accepted, matching color.ParseHex.
		_ = v.RegisterValidation("hexcolor", func(fl validator.FieldLevel) bool {
			_, err := color.ParseHex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("overflow_policy", func(fl validator.FieldLevel) bool {
			_, ok := overflowrow.ParsePolicy(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("arrangement", func(fl validator.FieldLevel) bool {
			_, ok := overflowrow.ParseArrangement(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
