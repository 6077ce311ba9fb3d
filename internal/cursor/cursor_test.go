package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	ts := time.Date(2024, 7, 4, 12, 47, 0, 123_000_000, time.UTC)

	c, err := Decode(Encode(ts, "abc"))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "abc", c.ID)
	assert.True(t, ts.Equal(c.Time()))
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"%%%", "bm90LWpzb24", "e30"} {
		t.Run(s, func(t *testing.T) {
			_, err := Decode(s)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}
