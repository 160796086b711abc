package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParameter_SetFill tests fill-state tracking, including deliberate nulls
func TestParameter_SetFill(t *testing.T) {
	p := &Parameter{Name: "petId"}
	assert.False(t, p.Filled)

	p.SetFill(42)
	assert.Equal(t, 42, p.Fill)
	assert.True(t, p.Filled)

	p.SetFill(nil)
	assert.Nil(t, p.Fill)
	assert.True(t, p.Filled, "a nil fill is still a fill")
}

// TestParameter_Default tests default extraction from the raw spec
func TestParameter_Default(t *testing.T) {
	p := &Parameter{Spec: map[string]any{"default": 10}}
	assert.Equal(t, 10, p.Default())

	p = &Parameter{Spec: map[string]any{}}
	assert.Nil(t, p.Default())
}

// TestParameter_IsHeader tests the header location check
func TestParameter_IsHeader(t *testing.T) {
	assert.True(t, (&Parameter{In: "header"}).IsHeader())
	assert.False(t, (&Parameter{In: "query"}).IsHeader())
}

// TestParameter_HasDefaultOrEnum tests detection directly and under a
// schema wrapper
func TestParameter_HasDefaultOrEnum(t *testing.T) {
	tests := []struct {
		name string
		spec map[string]any
		want bool
	}{
		{
			name: "direct default",
			spec: map[string]any{"default": "off"},
			want: true,
		},
		{
			name: "direct enum",
			spec: map[string]any{"enum": []any{"a"}},
			want: true,
		},
		{
			name: "empty enum",
			spec: map[string]any{"enum": []any{}},
			want: false,
		},
		{
			name: "default under schema wrapper",
			spec: map[string]any{"schema": map[string]any{"default": 1}},
			want: true,
		},
		{
			name: "enum under schema wrapper",
			spec: map[string]any{"schema": map[string]any{"enum": []any{"x"}}},
			want: true,
		},
		{
			name: "nothing",
			spec: map[string]any{"type": "string"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Parameter{Spec: tt.spec}
			assert.Equal(t, tt.want, p.HasDefaultOrEnum())
		})
	}
}
