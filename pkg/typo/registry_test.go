package typo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/typo"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := typo.NewRegistry()
	reg.RegisterStage(testStage())

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"X01", "X01", true},
		{"dots", "X03", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		id, rule, ok := reg.Resolve(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key: %s", tt.key)
		if tt.wantOK {
			assert.Equal(t, tt.wantID, id, "key: %s", tt.key)
			assert.Equal(t, tt.wantID, rule.ID())
		}
	}

	assert.Equal(t, "test", reg.StageOf("X02"))
	assert.Equal(t, []string{"X01", "X02", "X03"}, reg.IDs())
	assert.Len(t, reg.Rules(), 3)
}

func TestRegistry_Canonicalize(t *testing.T) {
	t.Parallel()

	reg := typo.NewRegistry()
	reg.RegisterStage(testStage())

	ids, err := reg.Canonicalize([]string{"dots", "X01", "X03"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X03", "X01"}, ids)

	ids, err = reg.Canonicalize([]string{"dash", "bogus"})
	require.ErrorIs(t, err, typo.ErrUnknownRule)
	assert.Contains(t, err.Error(), "bogus")
	assert.Equal(t, []string{"X02"}, ids)
}
