package narrative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/lance/internal/game/narrative"
)

func TestChannel_NeverBlocks(t *testing.T) {
	c := narrative.NewChannel(1)
	c.Publish(narrative.Intro())
	c.Publish(narrative.Victory())
	c.Publish(narrative.GameOver())

	assert.Equal(t, 2, c.Dropped())
	got := <-c.Events()
	assert.Equal(t, narrative.KindIntro, got.Kind)
}

func TestNewChannel_PanicsOnZeroSize(t *testing.T) {
	assert.Panics(t, func() { narrative.NewChannel(0) })
}

func TestRecorder(t *testing.T) {
	var r narrative.Recorder
	r.Publish(narrative.Intro())
	r.Publish(narrative.Victory())

	require.Len(t, r.Events(), 2)
	assert.Equal(t, 1, r.Count(narrative.KindVictory))
	assert.Equal(t, 0, r.Count(narrative.KindGameOver))
}

func TestStoryEvents_HaveTitleAndBody(t *testing.T) {
	for _, e := range []narrative.Event{narrative.Intro(), narrative.Victory(), narrative.GameOver()} {
		assert.NotEmpty(t, e.Title, string(e.Kind))
		assert.NotEmpty(t, e.Body, string(e.Kind))
	}
}
