package model

// SearchCriteria is the set of optional filters for a property search.
//
// A zero value means "no filter" on that dimension: empty City, nil
// pointers. Prices are whole currency units; the stored cost_per_night is
// divided by 100 before comparison.
type SearchCriteria struct {
	City                 string
	OwnerID              *int
	MinimumPricePerNight *int
	MaximumPricePerNight *int
	MinimumRating        *int
}

// Recognized search option keys, as sent by the front end.
const (
	OptionCity                 = "city"
	OptionOwnerID              = "owner_id"
	OptionMinimumPricePerNight = "minimum_price_per_night"
	OptionMaximumPricePerNight = "maximum_price_per_night"
	OptionMinimumRating        = "minimum_rating"
)
