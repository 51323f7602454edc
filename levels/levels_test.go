package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsValidate(t *testing.T) {
	for i := 0; i < Count; i++ {
		spec, err := Load(i)
		require.NoError(t, err, "level %d", i)
		assert.NotEmpty(t, spec.Platforms)
		assert.NotNil(t, spec.Key, "level %d has no key", i)
	}
}

func TestLoadWrapsIndex(t *testing.T) {
	a, err := Load(Count + 1)
	require.NoError(t, err)
	b, err := Load(1)
	require.NoError(t, err)
	assert.Equal(t, b, a)

	assert.Equal(t, Count-1, Normalize(-1))
	assert.Equal(t, "level00.json", Name(Count))
}

func TestParseRejectsMalformedLevels(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"no_hero", `{"door": {"x": 1, "y": 2}}`, ErrMissingHero},
		{"no_door", `{"hero": {"x": 1, "y": 2}}`, ErrMissingDoor},
		{"bad_image", `{"hero": {"x": 1, "y": 2}, "door": {"x": 1, "y": 2}, "platforms": [{"x": 0, "y": 0, "image": "lava"}]}`, ErrUnknownPlatformImage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Parse([]byte(`{"hero":`))
	assert.Error(t, err)
}

func TestPlatformSize(t *testing.T) {
	cases := map[string][2]int{
		"ground":    {960, 42},
		"grass:8x1": {336, 42},
		"grass:1x1": {42, 42},
		"grass:2x3": {84, 126},
	}
	for image, want := range cases {
		w, h, ok := PlatformSize(image)
		require.True(t, ok, image)
		assert.Equal(t, want, [2]int{w, h}, image)
	}
	for _, bad := range []string{"", "grass:", "grass:0x1", "grass:ax1", "stone:1x1"} {
		_, _, ok := PlatformSize(bad)
		assert.False(t, ok, bad)
	}
}
