package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryBorrow_AvailableItem(t *testing.T) {
	items := []Item{
		&CD{Media: Media{Name: "Best Of", Available: true}, Artist: "Artist"},
		&DVD{Media: Media{Name: "Film", Available: true}, Director: "Director"},
		&Book{Media: Media{Name: "1984", Available: true}, Author: "Orwell"},
	}

	for _, item := range items {
		t.Run(item.Type().String(), func(t *testing.T) {
			assert.True(t, item.TryBorrow())
			assert.False(t, item.IsAvailable())

			// second borrow fails and leaves the item out
			assert.False(t, item.TryBorrow())
			assert.False(t, item.IsAvailable())
		})
	}
}

func TestTryBorrow_BoardGameNeverLent(t *testing.T) {
	for _, available := range []bool{true, false} {
		game := &BoardGame{Media: Media{Name: "Monopoly", Available: available}}

		assert.False(t, game.TryBorrow())
		assert.Equal(t, available, game.IsAvailable())
	}
}

func TestMarkReturned_Idempotent(t *testing.T) {
	cd := &CD{Media: Media{Name: "Best Of", Available: false}}

	cd.MarkReturned()
	assert.True(t, cd.IsAvailable())

	cd.MarkReturned()
	assert.True(t, cd.IsAvailable())
}

func TestMediaType_Circulation(t *testing.T) {
	assert.True(t, MediaTypeCD.IsCirculating())
	assert.True(t, MediaTypeDVD.IsCirculating())
	assert.True(t, MediaTypeBook.IsCirculating())
	assert.False(t, MediaTypeBoardGame.IsCirculating())
	assert.False(t, MediaType("VINYL").IsCirculating())
}

func TestParseMediaType(t *testing.T) {
	mediaType, ok := ParseMediaType(" book ")
	require.True(t, ok)
	assert.Equal(t, MediaTypeBook, mediaType)

	_, ok = ParseMediaType("LIVRE")
	assert.False(t, ok)
}

func TestNewItem(t *testing.T) {
	item, ok := NewItem(MediaTypeDVD, "Film", "Director", true)
	require.True(t, ok)
	assert.Equal(t, MediaTypeDVD, item.Type())
	assert.Equal(t, "Director", item.Creator())
	assert.True(t, item.IsAvailable())

	game, ok := NewItem(MediaTypeBoardGame, "Monopoly", "Hasbro", true)
	require.True(t, ok)
	assert.Empty(t, game.Creator())

	_, ok = NewItem("VINYL", "Record", "", true)
	assert.False(t, ok)
}
