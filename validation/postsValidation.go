package validation

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"

	"posts-api/models"
)

// ValidationError represents custom validation errors
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(e.Errors, ", "))
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// ValidateCreatePost checks a decoded create request.
func ValidateCreatePost(post models.CreatePostSchema) error {
	return validateStruct(post)
}

// ValidateFilterOptions checks pagination values after defaults are applied.
func ValidateFilterOptions(opts models.FilterOptions) error {
	return validateStruct(opts)
}

// ParseFilterOptions reads page and limit from the query string, falling back
// to the defaults when a parameter is absent or empty.
func ParseFilterOptions(query url.Values) (models.FilterOptions, error) {
	opts := models.FilterOptions{
		Page:  models.DefaultPage,
		Limit: models.DefaultLimit,
	}

	var err error
	if opts.Page, err = parsePositive(query, "page", opts.Page); err != nil {
		return models.FilterOptions{}, err
	}
	if opts.Limit, err = parsePositive(query, "limit", opts.Limit); err != nil {
		return models.FilterOptions{}, err
	}

	if err := ValidateFilterOptions(opts); err != nil {
		return models.FilterOptions{}, err
	}
	// Skip must stay representable as int64.
	if opts.Page-1 > math.MaxInt64/opts.Limit {
		return models.FilterOptions{}, &ValidationError{Errors: []string{"page: out of range for limit"}}
	}
	return opts, nil
}

func parsePositive(query url.Values, key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Errors: []string{fmt.Sprintf("%s: not an integer", key)}}
	}
	return n, nil
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "validate")
	}

	validationErrors := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Errors: validationErrors}
}
