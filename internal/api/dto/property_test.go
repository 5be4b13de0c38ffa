package dto_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymestates/realty/internal/api/dto"
)

func TestParsePropertyFilters(t *testing.T) {
	t.Run("empty query applies no filters", func(t *testing.T) {
		f := dto.ParsePropertyFilters(url.Values{})
		assert.Empty(t, f.City)
		assert.Nil(t, f.Bedrooms)
		assert.Nil(t, f.MinPrice)
		assert.Nil(t, f.MaxPrice)
	})

	t.Run("parses numeric filters", func(t *testing.T) {
		q := url.Values{}
		q.Set("city", "Mumbai")
		q.Set("bedrooms", "3")
		q.Set("min_price", "1000000")
		q.Set("max_price", "5000000")

		f := dto.ParsePropertyFilters(q)
		assert.Equal(t, "Mumbai", f.City)
		require.NotNil(t, f.Bedrooms)
		assert.Equal(t, 3, *f.Bedrooms)
		require.NotNil(t, f.MinPrice)
		assert.Equal(t, int64(1000000), *f.MinPrice)
		require.NotNil(t, f.MaxPrice)
		assert.Equal(t, int64(5000000), *f.MaxPrice)
	})

	t.Run("ignores unparsable numbers", func(t *testing.T) {
		q := url.Values{}
		q.Set("bedrooms", "many")
		q.Set("min_price", "cheap")

		f := dto.ParsePropertyFilters(q)
		assert.Nil(t, f.Bedrooms)
		assert.Nil(t, f.MinPrice)
	})
}

func TestCreatePropertyRequestValidate(t *testing.T) {
	base := dto.CreatePropertyRequest{
		Title:        "Sea View Flat",
		Description:  "Two bedroom flat with a sea view.",
		Price:        9000000,
		PropertyType: "apartment",
		Address:      dto.AddressDTO{City: "Mumbai", State: "Maharashtra"},
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		assert.Empty(t, base.Validate())
	})

	t.Run("flags each missing field", func(t *testing.T) {
		errs := dto.CreatePropertyRequest{}.Validate()
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "description")
		assert.Contains(t, errs, "property_type")
		assert.Contains(t, errs, "address.city")
		assert.Contains(t, errs, "address.state")
	})

	t.Run("rejects unknown type and status", func(t *testing.T) {
		req := base
		req.PropertyType = "castle"
		req.Status = "pending"

		errs := req.Validate()
		assert.Contains(t, errs, "property_type")
		assert.Contains(t, errs, "status")
	})

	t.Run("rejects negative price", func(t *testing.T) {
		req := base
		req.Price = -1
		assert.Contains(t, req.Validate(), "price")
	})
}
