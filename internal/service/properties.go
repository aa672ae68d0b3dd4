package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/rs/zerolog"
)

type propertyStore interface {
	GetAllProperties(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyWithRating, error)
	AddProperty(ctx context.Context, in model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	properties propertyStore
	logger     *zerolog.Logger
}

func NewPropertyService(properties propertyStore, logger *zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, logger: logger}
}

// ParseSearchCriteria turns the search form's option bag into criteria.
//
// Recognized keys are city, owner_id, minimum_price_per_night,
// maximum_price_per_night and minimum_rating. Empty values mean no filter.
// Unknown keys and values that are not whole numbers fail with a 400
// listing every offending field.
func (s *PropertyService) ParseSearchCriteria(options map[string]string) (model.SearchCriteria, error) {
	o := newSearchOptions(options)
	if err := validation.Check(o); err != nil {
		return model.SearchCriteria{}, err
	}
	return o.criteria, nil
}

// Search returns up to limit reviewed properties matching options,
// cheapest first. limit <= 0 means the default of 10.
func (s *PropertyService) Search(ctx context.Context, options map[string]string, limit int) ([]model.PropertyWithRating, error) {
	criteria, err := s.ParseSearchCriteria(options)
	if err != nil {
		return nil, err
	}

	properties, err := s.properties.GetAllProperties(ctx, criteria, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("property search failed")
		return nil, sqlerr.HandleError(err)
	}
	return properties, nil
}

// AddProperty validates and stores a new listing.
func (s *PropertyService) AddProperty(ctx context.Context, in *model.NewProperty) (*model.Property, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	property, err := s.properties.AddProperty(ctx, *in)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.logger.Info().
		Int("property_id", property.ID).
		Int("owner_id", property.OwnerID).
		Msg("property listed")

	return property, nil
}
