package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const propertiesTable = "properties"

type PropertyRepository struct {
	db     Querier
	logger *zerolog.Logger
}

func NewPropertyRepository(db Querier, logger *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, logger: logger}
}

// GetAllProperties returns up to limit reviewed properties matching
// criteria, cheapest first, each with its average rating.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyWithRating, error) {
	stmt, args := BuildPropertyQuery(criteria, limit)

	r.logger.Debug().
		Str("query", stmt).
		Interface("args", args).
		Msg("searching properties")

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, wrapErr(propertiesTable, "search properties", err)
	}

	properties, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PropertyWithRating])
	if err != nil {
		return nil, wrapErr(propertiesTable, "collect properties", err)
	}
	if properties == nil {
		properties = []model.PropertyWithRating{}
	}
	return properties, nil
}

// AddProperty inserts a listing and returns the stored row.
func (r *PropertyRepository) AddProperty(ctx context.Context, in model.NewProperty) (*model.Property, error) {
	stmt := `
INSERT INTO properties (
  owner_id, title, description, thumbnail_photo_url, cover_photo_url,
  cost_per_night, street, city, province, post_code, country,
  parking_spaces, number_of_bathrooms, number_of_bedrooms
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + propertyColumns

	row := r.db.QueryRow(ctx, stmt,
		in.OwnerID,
		in.Title,
		in.Description,
		in.ThumbnailPhotoURL,
		in.CoverPhotoURL,
		in.CostPerNight,
		in.Street,
		in.City,
		in.Province,
		in.PostCode,
		in.Country,
		in.ParkingSpaces,
		in.NumberOfBathrooms,
		in.NumberOfBedrooms,
	)

	var p model.Property
	if err := row.Scan(propertyScanTargets(&p)...); err != nil {
		return nil, wrapErr(propertiesTable, "add property", err)
	}
	return &p, nil
}

// propertyScanTargets lists p's fields in propertyColumns order.
func propertyScanTargets(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}
