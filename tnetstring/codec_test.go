package tnetstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitCount(t *testing.T) {
	cases := map[int]int{
		0: 1, 1: 1, 9: 1,
		10: 2, 99: 2,
		100: 3, 999999: 6,
	}
	for n, want := range cases {
		require.Equal(t, want, DigitCount(n), "DigitCount(%d)", n)
	}
}

func TestParsePrefix(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		n, colon, err := ParsePrefix([]byte("3:bar,"))
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, 1, colon)
	})

	t.Run("zero length", func(t *testing.T) {
		n, colon, err := ParsePrefix([]byte("0:}"))
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Equal(t, 1, colon)
	})

	t.Run("missing colon", func(t *testing.T) {
		_, _, err := ParsePrefix([]byte("3bar,"))
		requireKind(t, err, InvalidTNetstring)
	})

	t.Run("empty prefix", func(t *testing.T) {
		_, _, err := ParsePrefix([]byte(":bar,"))
		requireKind(t, err, InvalidTNetstring)
	})

	t.Run("leading zero", func(t *testing.T) {
		_, _, err := ParsePrefix([]byte("03:bar,"))
		requireKind(t, err, InvalidTNetstring)
	})

	t.Run("prefix too wide", func(t *testing.T) {
		_, _, err := ParsePrefix([]byte("12345678901:x,"))
		requireKind(t, err, InvalidTNetstring)
	})

	t.Run("payload overruns slice", func(t *testing.T) {
		_, _, err := ParsePrefix([]byte("10:bar,"))
		requireKind(t, err, InvalidTNetstring)
	})
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	require.Error(t, err)
	tErr, ok := err.(*Error)
	require.True(t, ok, "expected *tnetstring.Error, got %T", err)
	require.Equal(t, want, tErr.Kind)
}
