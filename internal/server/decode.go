package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/samber/lo"
)

const maxBodySize = 1 << 20

// decodeJSON reads a requirements document on top of defaults. Unknown keys are rejected.
func decodeJSON(body io.Reader, defaults models.Requirements) (models.Requirements, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return models.Requirements{}, fmt.Errorf("failed to read body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Requirements{}, fmt.Errorf("%w: malformed json: %v", validate.ErrInvalidInput, err)
	}

	known := lo.Map(defaults.Fields(), func(f models.Field, _ int) string { return f.Key })

	unknown := lo.Without(lo.Keys(raw), known...)
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return models.Requirements{}, validate.NewFieldError(unknown[0], nil, "is not a known field")
	}

	requirements := defaults

	if err := json.Unmarshal(data, &requirements); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.Requirements{}, validate.NewFieldError(typeErr.Field, typeErr.Value, fmt.Sprintf("must be %s", typeErr.Type))
		}
		return models.Requirements{}, fmt.Errorf("failed to decode json: %w", err)
	}

	return requirements, nil
}
