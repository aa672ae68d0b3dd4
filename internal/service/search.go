package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
)

// maxRating is the top of the review scale.
const maxRating = 5

// searchOptions is the raw option bag sent by the search form.
type searchOptions struct {
	City                 string `validate:"max=255"`
	OwnerID              string `validate:"omitempty,number"`
	MinimumPricePerNight string `validate:"omitempty,number"`
	MaximumPricePerNight string `validate:"omitempty,number"`
	MinimumRating        string `validate:"omitempty,number"`

	unknown  []string
	criteria model.SearchCriteria
}

func newSearchOptions(options map[string]string) *searchOptions {
	o := &searchOptions{}
	for key, value := range options {
		value = strings.TrimSpace(value)
		switch key {
		case model.OptionCity:
			o.City = value
		case model.OptionOwnerID:
			o.OwnerID = value
		case model.OptionMinimumPricePerNight:
			o.MinimumPricePerNight = value
		case model.OptionMaximumPricePerNight:
			o.MaximumPricePerNight = value
		case model.OptionMinimumRating:
			o.MinimumRating = value
		default:
			o.unknown = append(o.unknown, key)
		}
	}
	sort.Strings(o.unknown)
	return o
}

// Validate checks the raw strings and, when they are all valid, fills
// o.criteria with the parsed values.
func (o *searchOptions) Validate() error {
	var problems validation.CustomValidationErrors
	for _, key := range o.unknown {
		problems = append(problems, validation.CustomValidationError{
			Field:   key,
			Message: "is not a supported search option",
		})
	}
	if !utf8.ValidString(o.City) {
		problems = append(problems, validation.CustomValidationError{
			Field:   model.OptionCity,
			Message: "must be valid UTF-8 text",
		})
	}
	if len(problems) > 0 {
		return problems
	}

	if err := validation.Struct(o); err != nil {
		return err
	}

	criteria := model.SearchCriteria{City: o.City}
	parse := func(field, raw string) *int {
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, validation.CustomValidationError{Field: field, Message: "is out of range"})
			return nil
		}
		return &n
	}

	criteria.OwnerID = parse(model.OptionOwnerID, o.OwnerID)
	criteria.MinimumPricePerNight = parse(model.OptionMinimumPricePerNight, o.MinimumPricePerNight)
	criteria.MaximumPricePerNight = parse(model.OptionMaximumPricePerNight, o.MaximumPricePerNight)
	criteria.MinimumRating = parse(model.OptionMinimumRating, o.MinimumRating)

	if r := criteria.MinimumRating; r != nil && *r > maxRating {
		problems = append(problems, validation.CustomValidationError{
			Field:   model.OptionMinimumRating,
			Message: fmt.Sprintf("must not exceed %d", maxRating),
		})
	}

	lo, hi := criteria.MinimumPricePerNight, criteria.MaximumPricePerNight
	if lo != nil && hi != nil && *hi < *lo {
		problems = append(problems, validation.CustomValidationError{
			Field:   model.OptionMaximumPricePerNight,
			Message: "must not be less than " + model.OptionMinimumPricePerNight,
		})
	}

	if len(problems) > 0 {
		return problems
	}

	o.criteria = criteria
	return nil
}
