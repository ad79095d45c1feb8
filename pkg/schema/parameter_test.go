package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammophone/domos/pkg/schema"
)

func TestNewParameter(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		caption string
		desc    string
		typ     schema.Type
		wantErr string
	}{
		{"valid", "comment", "Comment", "A free-text comment.", schema.String(), ""},
		{"missing key", "", "Comment", "A free-text comment.", schema.String(), "key is required"},
		{"missing caption", "comment", "", "A free-text comment.", schema.String(), "caption is required"},
		{"missing description", "comment", "Comment", "", schema.String(), "description is required"},
		{"missing type", "comment", "Comment", "A free-text comment.", nil, "type is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := schema.NewParameter(tt.key, tt.caption, tt.desc, tt.typ)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, p.Key())
			assert.Equal(t, tt.caption, p.Caption())
			assert.Equal(t, tt.desc, p.Description())
			assert.False(t, p.IsRequired())
		})
	}
}

func TestParameter_Options(t *testing.T) {
	p, err := schema.NewParameter("amount", "Amount", "Order amount.", schema.Float(),
		schema.Required(), schema.WithRules(schema.Range(0, 100)))
	require.NoError(t, err)

	assert.True(t, p.IsRequired())
	assert.Len(t, p.Rules(), 1)
}

func TestParameter_RulesReturnsCopy(t *testing.T) {
	p, err := schema.NewParameter("amount", "Amount", "Order amount.", schema.Float(),
		schema.WithRules(schema.Range(0, 100)))
	require.NoError(t, err)

	rules := p.Rules()
	rules[0] = nil
	assert.NotNil(t, p.Rules()[0])
}

func TestMustParameter_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		schema.MustParameter("", "Caption", "Description.", schema.String())
	})
}
