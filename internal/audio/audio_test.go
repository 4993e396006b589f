package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/undertow/internal/simulation"
)

func TestSynthesizeEveryCue(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			buf := Synthesize(c)
			require.NotEmpty(t, buf)
			require.Zero(t, len(buf)%bytesPerFrame)

			peak := 0.0
			for i := 0; i+4 <= len(buf); i += 4 {
				v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
				require.False(t, math.IsNaN(v))
				peak = math.Max(peak, math.Abs(v))
			}
			assert.LessOrEqual(t, peak, 1.0)
			assert.Greater(t, peak, 0.0, "cue is silent")
		})
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	assert.Equal(t, Synthesize(CueSplash), Synthesize(CueSplash))
	assert.Nil(t, Synthesize(cueCount))
}

func TestCueFor(t *testing.T) {
	c, ok := CueFor(simulation.Event{Kind: simulation.EventCollected})
	assert.True(t, ok)
	assert.Equal(t, CueCollect, c)

	c, ok = CueFor(simulation.Event{Kind: simulation.EventPressureBlackout})
	assert.True(t, ok)
	assert.Equal(t, CueBlackout, c)

	_, ok = CueFor(simulation.Event{Kind: simulation.EventMinigameCancelled})
	assert.False(t, ok)
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := Disabled(zerolog.Nop())
	assert.False(t, p.Enabled())
	p.Play(CueSolved)
	p.HandleEvents([]simulation.Event{{Kind: simulation.EventBoarded}})
}

func TestStereoChannelsMatch(t *testing.T) {
	buf := make([]byte, 2*bytesPerFrame)
	putStereo(buf, 1, 0.25)
	assert.Equal(t, buf[8:12], buf[12:16])
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "splash", CueSplash.String())
	assert.Equal(t, "blackout", CueBlackout.String())
	assert.Equal(t, "cue(99)", Cue(99).String())
}
