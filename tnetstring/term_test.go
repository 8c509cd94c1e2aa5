package tnetstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		term, err := Create([]byte("bar"), TagString)
		require.NoError(t, err)
		require.Equal(t, "3:bar,", string(term.Bytes()))
		require.Equal(t, TagString, term.Tag())
		require.Equal(t, []byte("bar"), term.Payload())
	})

	t.Run("null", func(t *testing.T) {
		term, err := Create(nil, TagNull)
		require.NoError(t, err)
		require.Equal(t, "0:~", string(term.Bytes()))
	})

	t.Run("nil payload for non-null tag", func(t *testing.T) {
		_, err := Create(nil, TagString)
		requireKind(t, err, InvalidArgument)
	})

	t.Run("invalid tag", func(t *testing.T) {
		_, err := Create([]byte("x"), Tag('x'))
		requireKind(t, err, InvalidArgument)
	})
}

func TestParseAt(t *testing.T) {
	t.Run("parses a term and leaves the rest untouched", func(t *testing.T) {
		buf := []byte("3:foo,3:bar,}")
		term, err := ParseAt(buf, 0)
		require.NoError(t, err)
		require.Equal(t, "3:foo,", string(term.Bytes()))
		require.Equal(t, 6, term.Len())

		next, err := ParseAt(buf, term.Len())
		require.NoError(t, err)
		require.Equal(t, "3:bar,", string(next.Bytes()))
	})

	t.Run("borrowed bytes alias the source buffer", func(t *testing.T) {
		buf := []byte("3:foo,")
		term, err := ParseAt(buf, 0)
		require.NoError(t, err)
		buf[2] = 'F'
		require.Equal(t, byte('F'), term.Payload()[0])
	})

	t.Run("invalid trailing tag", func(t *testing.T) {
		_, err := ParseAt([]byte("3:foo?"), 0)
		requireKind(t, err, InvalidTNetstring)
	})

	t.Run("start out of range", func(t *testing.T) {
		_, err := ParseAt([]byte("3:foo,"), 6)
		requireKind(t, err, InvalidTNetstring)
	})
}

func TestRoundTrip(t *testing.T) {
	original := []byte("12:3:foo,3:bar,}")
	term, err := ParseAt(original, 0)
	require.NoError(t, err)
	require.Equal(t, original, term.Bytes())
}

func TestIsZero(t *testing.T) {
	require.True(t, Term{}.IsZero())

	term, err := Create([]byte("x"), TagString)
	require.NoError(t, err)
	require.False(t, term.IsZero())
}
