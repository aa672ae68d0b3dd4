// Package validation checks input structs before they reach a repository.
//
// Struct tags are enforced with go-playground/validator; types that need
// more than tags return CustomValidationErrors from Validate. Either way
// Check reports the failures as a 400 errs.HTTPError with one entry per
// offending field, named in snake_case.
package validation
