package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/undertow/internal/render"
)

func TestEveryKeyHasAnEbitenKey(t *testing.T) {
	for _, k := range render.AllKeys() {
		_, ok := keyToEbitenKey(k)
		assert.True(t, ok, "key %s", k.Name())
	}
	_, ok := keyToEbitenKey(render.Key(-1))
	assert.False(t, ok)
}

func TestMeasureText(t *testing.T) {
	r := &EbitenRenderer{}

	w, h := r.MeasureText("depth", 1)
	assert.Equal(t, 5*glyphWidth, w)
	assert.Equal(t, glyphHeight, h)

	w, h = r.MeasureText("ab\nlonger", 2)
	assert.Equal(t, 6*glyphWidth*2, w)
	assert.Equal(t, 2*glyphHeight*2, h)

	w, h = r.MeasureText("", 1)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
