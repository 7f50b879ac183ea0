package tower

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull(t *testing.T) {
	for _, size := range []int{0, 1, 2, 5, MaxDiscs} {
		tw, err := Full("A", size)
		require.NoError(t, err)
		require.Equal(t, size, tw.Count())
		require.True(t, tw.IsValid())

		discs := tw.Discs()
		for i, idx := range discs {
			require.Equal(t, Index(i), idx)
		}
	}

	_, err := Full("A", MaxDiscs+1)
	require.True(t, errors.Is(err, ErrTooManyDiscs))

	_, err = Full("A", -1)
	require.True(t, errors.Is(err, ErrNegativeSize))
}

func TestEmpty(t *testing.T) {
	tw := Empty("B")
	require.Equal(t, "B", tw.Name())
	require.Zero(t, tw.Count())
	require.True(t, tw.Peek().IsEmpty())
	require.True(t, tw.IsValid())

	disc, ok := tw.Pop()
	require.False(t, ok)
	require.True(t, disc.IsEmpty())
}

func TestPushPopPeek(t *testing.T) {
	tw := EmptyWithCapacity("C", 2)

	tw.Push(NoDisc)
	require.Zero(t, tw.Count())

	tw.Push(DiscOf(4))
	tw.Push(DiscOf(1))
	require.Equal(t, 2, tw.Count())
	require.Equal(t, DiscOf(1), tw.Peek())
	require.Equal(t, "C[1 4]", tw.String())

	disc, ok := tw.Pop()
	require.True(t, ok)
	require.Equal(t, DiscOf(1), disc)
	require.Equal(t, DiscOf(4), tw.Peek())

	// push does not check legality
	tw.Push(DiscOf(7))
	require.False(t, tw.IsValid())
}

func TestIsValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		discs []Index // bottom first
		valid bool
	}{
		{"empty", nil, true},
		{"single", []Index{3}, true},
		{"ordered", []Index{5, 3, 0}, true},
		{"equal", []Index{3, 3}, false},
		{"inverted", []Index{1, 2}, false},
		{"broken below top", []Index{2, 4, 1}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tw := Empty("A")
			for _, idx := range tc.discs {
				tw.Push(DiscOf(idx))
			}
			require.Equal(t, tc.valid, tw.IsValid())
		})
	}
}

func TestCanMove(t *testing.T) {
	build := func(discs ...Index) *Tower {
		tw := Empty("T")
		for _, idx := range discs {
			tw.Push(DiscOf(idx))
		}
		return tw
	}

	assert.False(t, build().CanMove(build()))
	assert.False(t, build().CanMove(build(3)))
	assert.True(t, build(3).CanMove(build()))
	assert.True(t, build(3, 1).CanMove(build(2)))
	assert.False(t, build(3, 2).CanMove(build(1)))

	same := build(2)
	assert.False(t, same.CanMove(same))
}

func TestMoveTo(t *testing.T) {
	a, err := Full("A", 2)
	require.NoError(t, err)
	b := Empty("B")

	res, err := a.MoveTo(b)
	require.NoError(t, err)
	require.Equal(t, Moved, res)
	require.Equal(t, DiscOf(0), b.Peek())
	require.Equal(t, DiscOf(1), a.Peek())

	res, err = a.MoveTo(b)
	require.Equal(t, Rejected, res)
	require.True(t, errors.Is(err, ErrIllegalMove))

	var illegal *IllegalMoveError
	require.True(t, errors.As(err, &illegal))
	require.Equal(t, DiscOf(1), illegal.Disc)
	require.Equal(t, DiscOf(0), illegal.Onto)
	require.Equal(t, "A", illegal.From)
	require.Equal(t, "B", illegal.To)

	// rejection leaves both towers untouched
	require.Equal(t, []Index{1}, a.Discs())
	require.Equal(t, []Index{0}, b.Discs())

	c := Empty("C")
	res, err = c.MoveTo(a)
	require.Equal(t, Rejected, res)
	require.Contains(t, err.Error(), "tower C is empty")
}

func TestMoveTo_RandomAttempts(t *testing.T) {
	const size = 6

	var attempts []uint8
	f := fuzz.NewWithSeed(42).NilChance(0).NumElements(500, 1000)
	f.Fuzz(&attempts)

	a, err := Full("A", size)
	require.NoError(t, err)
	towers := []*Tower{a, Empty("B"), Empty("C")}

	for _, at := range attempts {
		from, to := towers[int(at)%3], towers[int(at>>2)%3]
		before := [3][]Index{towers[0].Discs(), towers[1].Discs(), towers[2].Discs()}
		legal := from.CanMove(to)

		res, err := from.MoveTo(to)
		if legal {
			require.NoError(t, err)
			require.Equal(t, Moved, res)
		} else {
			require.Error(t, err)
			require.Equal(t, Rejected, res)
			require.Equal(t, before, [3][]Index{towers[0].Discs(), towers[1].Discs(), towers[2].Discs()})
		}

		seen := make(map[Index]bool, size)
		for _, tw := range towers {
			require.True(t, tw.IsValid(), tw.String())
			for _, idx := range tw.Discs() {
				require.False(t, seen[idx])
				seen[idx] = true
			}
		}
		require.Len(t, seen, size)
	}
}

func TestDisc(t *testing.T) {
	require.Equal(t, "-", NoDisc.String())
	require.Equal(t, "12", DiscOf(12).String())

	idx, ok := DiscOf(3).Index()
	require.True(t, ok)
	require.Equal(t, Index(3), idx)

	_, ok = NoDisc.Index()
	require.False(t, ok)

	require.True(t, DiscOf(1).Smaller(DiscOf(2)))
	require.False(t, DiscOf(2).Smaller(DiscOf(2)))
	require.False(t, NoDisc.Smaller(DiscOf(2)))
	require.Equal(t, "moved", Moved.String())
	require.Equal(t, "rejected", Rejected.String())
}
