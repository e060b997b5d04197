package validate

import (
	"fmt"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Assign decodes value into the requirement named key. Weak decoding accepts
// numeric strings and "true"/"false" as produced by spreadsheets and flags.
func Assign(r *models.Requirements, key string, value any, weak bool) error {
	field, found := lo.Find(r.Fields(), func(f models.Field) bool { return f.Key == key })
	if !found {
		return NewFieldError(key, nil, "is not a known field")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: weak,
		Result:           r,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any{key: value}); err != nil {
		if _, ok := field.Value.(bool); ok {
			return NewFieldError(key, value, "must be a boolean")
		}
		return NewFieldError(key, value, "must be an integer")
	}

	return nil
}
