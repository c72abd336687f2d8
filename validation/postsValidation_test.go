package validation

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-api/models"
)

func TestValidateCreatePost(t *testing.T) {
	require.NoError(t, ValidateCreatePost(models.CreatePostSchema{Title: "A", Content: "B"}))
	require.NoError(t, ValidateCreatePost(models.CreatePostSchema{Title: "A"}))

	for _, title := range []string{"", "   "} {
		err := ValidateCreatePost(models.CreatePostSchema{Title: title, Content: "B"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "title %q", title)
		assert.Contains(t, ve.Errors[0], "Title")
	}
}

func TestParseFilterOptionsDefaults(t *testing.T) {
	opts, err := ParseFilterOptions(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, models.FilterOptions{Page: 1, Limit: 10}, opts)
}

func TestParseFilterOptions(t *testing.T) {
	opts, err := ParseFilterOptions(url.Values{"page": {"2"}, "limit": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, models.FilterOptions{Page: 2, Limit: 2}, opts)
	assert.Equal(t, int64(2), opts.Skip())

	opts, err = ParseFilterOptions(url.Values{"limit": {"5"}})
	require.NoError(t, err)
	assert.Equal(t, models.FilterOptions{Page: 1, Limit: 5}, opts)
}

func TestParseFilterOptionsRejects(t *testing.T) {
	cases := []url.Values{
		{"page": {"0"}},
		{"limit": {"-1"}},
		{"page": {"abc"}},
		{"limit": {"1.5"}},
	}
	for _, q := range cases {
		_, err := ParseFilterOptions(q)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, "query %v", q)
	}
}

func TestParseFilterOptionsSkipOverflow(t *testing.T) {
	cases := []url.Values{
		{"page": {"9223372036854775807"}, "limit": {"10"}},
		{"page": {"4611686018427387905"}, "limit": {"4"}},
		{"page": {"3"}, "limit": {"9223372036854775807"}},
	}
	for _, q := range cases {
		_, err := ParseFilterOptions(q)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "query %v", q)
		assert.Equal(t, []string{"page: out of range for limit"}, ve.Errors)
	}

	// largest page whose skip still fits
	page := int64(math.MaxInt64/4 + 1)
	opts, err := ParseFilterOptions(url.Values{"page": {strconv.FormatInt(page, 10)}, "limit": {"4"}})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64/4*4), opts.Skip())
	assert.Positive(t, opts.Skip())

	opts, err = ParseFilterOptions(url.Values{"page": {"1"}, "limit": {"9223372036854775807"}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), opts.Skip())
}
