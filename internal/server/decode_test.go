package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_decodeJSON(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		wantErr  bool
		field    string
		expected func(r *models.Requirements)
	}{
		{name: "empty object", body: `{}`, expected: func(r *models.Requirements) {}},
		{name: "null", body: `null`, expected: func(r *models.Requirements) {}},
		{name: "override", body: `{"hive_vw": 4, "model_registry": true}`, expected: func(r *models.Requirements) {
			r.HiveVW = 4
			r.ModelRegistry = true
		}},
		{name: "unknown keys reported in order", body: `{"zeta": 1, "alpha": 2, "hive_vw": 1}`, wantErr: true, field: "alpha"},
		{name: "wrong type", body: `{"cde_vc": "two"}`, wantErr: true, field: "cde_vc"},
		{name: "wrong boolean type", body: `{"internal_nfs": 1}`, wantErr: true, field: "internal_nfs"},
		{name: "not an object", body: `[1, 2]`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tc := range testCases {
		actual, err := decodeJSON(strings.NewReader(tc.body), models.DefaultRequirements())

		if tc.wantErr {
			assert.ErrorIs(t, err, validate.ErrInvalidInput, tc.name)

			var fieldErr *validate.FieldError
			if tc.field == "" {
				assert.False(t, errors.As(err, &fieldErr), tc.name)
				continue
			}
			require.True(t, errors.As(err, &fieldErr), tc.name)
			assert.Equal(t, tc.field, fieldErr.Field, tc.name)
			continue
		}

		require.NoError(t, err, tc.name)

		expected := models.DefaultRequirements()
		tc.expected(&expected)
		assert.Equal(t, expected, actual, tc.name)
	}
}
