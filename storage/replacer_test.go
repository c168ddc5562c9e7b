package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFOReplacerTieBreaksOnLowestIndex(t *testing.T) {
	bp, _ := newTestPool(t, 3, RSFifo)
	r := bp.repl.(*fifoReplacer)

	frames := []Frame{{pageNum: 1}, {pageNum: 2}, {pageNum: 3}}
	idx, ok := r.victim(frames)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestLRUReplacerPicksSmallestHitNum(t *testing.T) {
	r := &lruReplacer{}
	frames := []Frame{
		{pageNum: 1, hitNum: 5},
		{pageNum: 2, hitNum: 2},
		{pageNum: 3, hitNum: 9},
	}
	idx, ok := r.victim(frames)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestLRUReplacerSkipsPinnedFrames(t *testing.T) {
	r := &lruReplacer{}
	frames := []Frame{
		{pageNum: 1, hitNum: 1, fixCount: 1},
		{pageNum: 2, hitNum: 2},
	}
	idx, ok := r.victim(frames)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestReplacerNoVictimWhenAllPinned(t *testing.T) {
	frames := []Frame{{pageNum: 1, fixCount: 1}, {pageNum: 2, fixCount: 1}}

	for _, r := range []replacer{&lruReplacer{}} {
		_, ok := r.victim(frames)
		require.False(t, ok)
	}
}
