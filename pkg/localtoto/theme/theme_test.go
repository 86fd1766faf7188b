package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTintPerScheme(t *testing.T) {
	assert.Equal(t, "#22C55E", Colors(Dark).Tint.Hex())
	assert.Equal(t, "#0A5D2C", Colors(Light).Tint.Hex())
	assert.NotEqual(t, Colors(Light), Colors(Dark))
}

func TestEveryTokenKeyResolves(t *testing.T) {
	require.Len(t, TokenKeys, 13)
	for _, scheme := range []Scheme{Light, Dark} {
		tokens := Colors(scheme)
		for _, key := range TokenKeys {
			_, ok := tokens.Get(key)
			assert.True(t, ok, "%s missing %s", scheme, key)
		}
	}

	_, ok := Colors(Light).Get("accent")
	assert.False(t, ok)
}

func TestParseScheme(t *testing.T) {
	for raw, want := range map[string]Scheme{"": Light, "system": Light, "LIGHT": Light, " dark ": Dark} {
		got, err := ParseScheme(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseScheme("sepia")
	assert.True(t, errors.Is(err, ErrUnknownScheme))
}

func TestNavigationChrome(t *testing.T) {
	light, dark := For(Light), For(Dark)

	assert.False(t, light.Navigation.Dark)
	assert.True(t, dark.Navigation.Dark)
	assert.Equal(t, light.Tokens.Tint, light.Navigation.Primary)
	assert.Equal(t, dark.Tokens.Surface, dark.Navigation.Card)
	assert.Equal(t, BrightGreen, light.Navigation.Notification)
}

func TestColorChannels(t *testing.T) {
	r, g, b := Color(0x22C55E).RGB()
	assert.Equal(t, []uint8{0x22, 0xC5, 0x5E}, []uint8{r, g, b})
	assert.Equal(t, "#000000", Black.Hex())
}
