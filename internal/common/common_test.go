package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))
	assert.True(t, IsMultiple([]string{"a", "b"}))

	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "CIMI_Reference_Model", Underscored("CIMI Reference Model"))
	assert.Equal(t, "CIMI-RM", Hyphenated("CIMI RM"))
	assert.Equal(t, "Core", Underscored("Core"))
}
