package accessgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvisionResult(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPass bool
	}{
		{name: "details array", body: `{"id":"p","details":[{"id":"a"},{"id":"b"}]}`, wantPass: true},
		{name: "empty details array", body: `{"id":"p","details":[]}`, wantPass: true},
		{name: "details array with leading whitespace", body: `{"id":"p","details":   [ ]}`, wantPass: true},
		{name: "details object", body: `{"id":"c","details":{"platform":"apple"}}`},
		{name: "details string", body: `{"id":"c","details":"text"}`},
		{name: "details null", body: `{"id":"c","details":null}`},
		{name: "no details", body: `{"id":"c","state":"active"}`},
		{name: "nested details array is not top-level", body: `{"id":"c","metadata":{"details":[1,2]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resolveProvisionResult("provision card", []byte(tt.body))
			require.NoError(t, err)

			if tt.wantPass {
				assert.IsType(t, &UnifiedAccessPass{}, res)
			} else {
				assert.IsType(t, &Card{}, res)
			}
		})
	}
}

func TestResolveProvisionResult_CardKeepsDetails(t *testing.T) {
	res, err := resolveProvisionResult("provision card", []byte(`{"id":"c","details":{"platform":"apple"}}`))
	require.NoError(t, err)

	card := res.(*Card)
	assert.Equal(t, "c", card.ID)
	assert.Equal(t, map[string]any{"platform": "apple"}, card.Details)
}

func TestResolveProvisionResult_Malformed(t *testing.T) {
	tests := []string{
		`not json`,
		`null`,
		` null `,
		``,
		`[{"id":"c"}]`,
		`{"id":"p","details":[{"id":1}]}`,
	}

	for _, body := range tests {
		t.Run(body, func(t *testing.T) {
			res, err := resolveProvisionResult("provision card", []byte(body))
			require.Error(t, err)
			assert.Nil(t, res)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "provision card", apiErr.Op)
			assert.Equal(t, body, apiErr.Body)
			assert.Error(t, apiErr.Err)
		})
	}
}
