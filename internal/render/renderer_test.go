package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "Space", KeySpace.Name())
	assert.Equal(t, "e", KeyE.Name())
	assert.Equal(t, "ArrowLeft", KeyLeft.Name())
	assert.Equal(t, "", Key(-1).Name())
	assert.Equal(t, "", keyCount.Name())
}

func TestAllKeysAreNamed(t *testing.T) {
	keys := AllKeys()
	assert.Len(t, keys, int(keyCount))
	seen := make(map[string]bool)
	for _, k := range keys {
		name := k.Name()
		assert.NotEmpty(t, name, "key %d", k)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}
