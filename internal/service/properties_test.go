package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyService(store *fakePropertyStore) *PropertyService {
	logger := zerolog.Nop()
	return NewPropertyService(store, &logger)
}

func TestParseSearchCriteria(t *testing.T) {
	svc := newPropertyService(&fakePropertyStore{})

	tests := []struct {
		name    string
		options map[string]string
		want    model.SearchCriteria
	}{
		{
			name:    "empty",
			options: map[string]string{},
			want:    model.SearchCriteria{},
		},
		{
			name:    "string numbers coerce to integers",
			options: map[string]string{"owner_id": "3", "minimum_price_per_night": "50"},
			want:    model.SearchCriteria{OwnerID: intPtr(3), MinimumPricePerNight: intPtr(50)},
		},
		{
			name: "every option",
			options: map[string]string{
				"city":                    " Vancouver ",
				"owner_id":                "7",
				"minimum_price_per_night": "50",
				"maximum_price_per_night": "200",
				"minimum_rating":          "4",
			},
			want: model.SearchCriteria{
				City:                 "Vancouver",
				OwnerID:              intPtr(7),
				MinimumPricePerNight: intPtr(50),
				MaximumPricePerNight: intPtr(200),
				MinimumRating:        intPtr(4),
			},
		},
		{
			name:    "blank values are no filter",
			options: map[string]string{"city": "", "minimum_rating": "  "},
			want:    model.SearchCriteria{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseSearchCriteria(tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSearchCriteriaRejects(t *testing.T) {
	svc := newPropertyService(&fakePropertyStore{})

	tests := []struct {
		name    string
		options map[string]string
		want    []errs.FieldError
	}{
		{
			name:    "unknown key",
			options: map[string]string{"bedrooms": "2", "city": "Toronto"},
			want:    []errs.FieldError{{Field: "bedrooms", Error: "is not a supported search option"}},
		},
		{
			name:    "non numeric owner",
			options: map[string]string{"owner_id": "abc"},
			want:    []errs.FieldError{{Field: "owner_id", Error: "must be a whole number"}},
		},
		{
			name:    "negative and fractional prices",
			options: map[string]string{"minimum_price_per_night": "-5", "maximum_price_per_night": "10.5"},
			want: []errs.FieldError{
				{Field: "minimum_price_per_night", Error: "must be a whole number"},
				{Field: "maximum_price_per_night", Error: "must be a whole number"},
			},
		},
		{
			name:    "rating above scale",
			options: map[string]string{"minimum_rating": "6"},
			want:    []errs.FieldError{{Field: "minimum_rating", Error: "must not exceed 5"}},
		},
		{
			name:    "inverted price range",
			options: map[string]string{"minimum_price_per_night": "300", "maximum_price_per_night": "100"},
			want:    []errs.FieldError{{Field: "maximum_price_per_night", Error: "must not be less than minimum_price_per_night"}},
		},
		{
			name:    "city is not utf-8",
			options: map[string]string{"city": "\xff\xfe"},
			want:    []errs.FieldError{{Field: "city", Error: "must be valid UTF-8 text"}},
		},
		{
			name:    "overflow",
			options: map[string]string{"owner_id": "99999999999999999999999"},
			want:    []errs.FieldError{{Field: "owner_id", Error: "is out of range"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseSearchCriteria(tt.options)
			httpErr := requireHTTPError(t, err, http.StatusBadRequest)
			assert.ElementsMatch(t, tt.want, httpErr.Errors)
		})
	}
}

func TestSearch(t *testing.T) {
	store := &fakePropertyStore{results: []model.PropertyWithRating{{AverageRating: 4.2}}}
	svc := newPropertyService(store)

	got, err := svc.Search(context.Background(), map[string]string{"city": "Vancouver"}, 5)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, "Vancouver", store.criteria.City)
	assert.Equal(t, 5, store.limit)
}

func TestSearchInvalidOptionsSkipsStore(t *testing.T) {
	store := &fakePropertyStore{}
	svc := newPropertyService(store)

	_, err := svc.Search(context.Background(), map[string]string{"owner_id": "x"}, 5)
	requireHTTPError(t, err, http.StatusBadRequest)
	assert.Zero(t, store.limit)
}

func TestSearchStoreFailure(t *testing.T) {
	svc := newPropertyService(&fakePropertyStore{err: errors.New("connection refused")})

	_, err := svc.Search(context.Background(), nil, 10)
	requireHTTPError(t, err, http.StatusInternalServerError)
}

func validProperty() *model.NewProperty {
	return &model.NewProperty{
		OwnerID:           3,
		Title:             "Speed lamp",
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example.com/thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/cover.jpg",
		CostPerNight:      93061,
		Street:            "536 Namsub Highway",
		City:              "Sotboske",
		Province:          "Quebec",
		PostCode:          "28142",
		Country:           "Canada",
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
	}
}

func TestAddProperty(t *testing.T) {
	store := &fakePropertyStore{}
	svc := newPropertyService(store)

	p, err := svc.AddProperty(context.Background(), validProperty())
	require.NoError(t, err)

	assert.Equal(t, 42, p.ID)
	require.NotNil(t, store.added)
	assert.Equal(t, "Sotboske", store.added.City)
}

func TestAddPropertyValidation(t *testing.T) {
	store := &fakePropertyStore{}
	svc := newPropertyService(store)

	in := validProperty()
	in.OwnerID = 0
	in.CoverPhotoURL = "not a url"
	in.NumberOfBedrooms = -1

	_, err := svc.AddProperty(context.Background(), in)
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "owner_id", Error: "is required"},
		{Field: "cover_photo_url", Error: "must be a valid URL"},
		{Field: "number_of_bedrooms", Error: "must be at least 0"},
	}, httpErr.Errors)
	assert.Nil(t, store.added)
}

func TestAddPropertyUnknownOwner(t *testing.T) {
	store := &fakePropertyStore{err: &pgconn.PgError{
		Code:       "23503",
		TableName:  "properties",
		ColumnName: "owner_id",
	}}
	svc := newPropertyService(store)

	_, err := svc.AddProperty(context.Background(), validProperty())
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
}
