package repository

import (
	"strconv"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
)

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
  properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
  properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
  properties.country, properties.street, properties.city, properties.province,
  properties.post_code, properties.active`

// likeEscaper makes % and _ in a search term match literally under the
// default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// BuildPropertyQuery assembles the property search query for criteria and
// returns it with its positional arguments. It does not touch the database.
//
// Each filter pushes its value first and then references it as $N, where N
// is the argument count after the push, so placeholders and arguments can
// never drift apart. Filters on property columns go before GROUP BY, the
// rating filter goes in HAVING, and the limit is always the final argument.
// A limit <= 0 means DefaultLimit.
func BuildPropertyQuery(criteria model.SearchCriteria, limit int) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)

	push := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	b.WriteString("SELECT ")
	b.WriteString(propertyColumns)
	b.WriteString(", avg(property_reviews.rating) AS average_rating\n")
	b.WriteString("FROM properties\n")
	b.WriteString("JOIN property_reviews ON properties.id = property_reviews.property_id\n")

	var filters []string
	if criteria.City != "" {
		filters = append(filters, "city ILIKE "+push("%"+likeEscaper.Replace(criteria.City)+"%"))
	}
	if criteria.OwnerID != nil {
		filters = append(filters, "properties.owner_id = "+push(*criteria.OwnerID))
	}
	if criteria.MinimumPricePerNight != nil {
		filters = append(filters, "properties.cost_per_night / 100 >= "+push(*criteria.MinimumPricePerNight))
	}
	if criteria.MaximumPricePerNight != nil {
		filters = append(filters, "properties.cost_per_night / 100 <= "+push(*criteria.MaximumPricePerNight))
	}
	if len(filters) > 0 {
		b.WriteString("WHERE ")
		b.WriteString(strings.Join(filters, "\n  AND "))
		b.WriteString("\n")
	}

	b.WriteString("GROUP BY properties.id\n")

	if criteria.MinimumRating != nil {
		b.WriteString("HAVING avg(property_reviews.rating) >= ")
		b.WriteString(push(*criteria.MinimumRating))
		b.WriteString("\n")
	}

	b.WriteString("ORDER BY cost_per_night ASC\n")
	b.WriteString("LIMIT ")
	b.WriteString(push(effectiveLimit(limit)))
	b.WriteString(";")

	return b.String(), args
}
