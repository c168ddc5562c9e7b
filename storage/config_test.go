package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReplacementStrategy(t *testing.T) {
	cases := map[string]ReplacementStrategy{
		"fifo":  RSFifo,
		"lru":   RSLru,
		"lru-k": RSLruK,
		"lfu":   RSLfu,
		"clock": RSClock,
	}
	for input, want := range cases {
		got, ok := ParseReplacementStrategy(input)
		require.True(t, ok, input)
		require.Equal(t, want, got)
	}

	_, ok := ParseReplacementStrategy("bogus")
	require.False(t, ok)
}
