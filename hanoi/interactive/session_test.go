package interactive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/insolar/hanoi/hanoi/solver"
	"github.com/insolar/hanoi/hanoi/tower"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSession_Prompts(t *testing.T) {
	s, err := NewSession(solver.Config{}, 2, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"A", "X", "X"}, s.Sources())

	dst, err := s.Destinations("a")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, dst)

	dst, err = s.Destinations("B")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "X"}, dst)

	_, err = s.Destinations("D")
	require.True(t, errors.Is(err, ErrBadInput))

	out, err := s.Turn("A", "B")
	require.NoError(t, err)
	require.Equal(t, Moved, out)

	require.Equal(t, []string{"A", "B", "X"}, s.Sources())
	dst, err = s.Destinations("A")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "C"}, dst)
}

func TestSession_Solve(t *testing.T) {
	rec := &solver.Recorder{}
	s, err := NewSession(solver.Config{SelfCheck: true}, 2, rec)
	require.NoError(t, err)

	for _, turn := range [][2]string{{"A", "B"}, {" a ", "c"}, {"B", "C"}} {
		require.False(t, s.Solved())
		out, err := s.Turn(turn[0], turn[1])
		require.NoError(t, err)
		require.Equal(t, Moved, out)
	}

	require.True(t, s.Solved())
	require.Equal(t, uint64(3), s.Moves())
	require.Len(t, rec.Moves, 3)
	require.Equal(t, []tower.Index{0, 1}, s.Board().C.Discs())
}

func TestSession_IllegalMove(t *testing.T) {
	s, err := NewSession(solver.Config{}, 3, nil)
	require.NoError(t, err)

	_, err = s.Turn("A", "B")
	require.NoError(t, err)

	out, err := s.Turn("A", "B")
	require.Equal(t, Rejected, out)
	require.True(t, errors.Is(err, tower.ErrIllegalMove))

	out, err = s.Turn("C", "A")
	require.Equal(t, Rejected, out)
	require.True(t, errors.Is(err, tower.ErrIllegalMove))

	require.Equal(t, uint64(1), s.Moves())
	require.Equal(t, []tower.Index{1, 2}, s.Board().A.Discs())
	require.Equal(t, []tower.Index{0}, s.Board().B.Discs())
}

func TestSession_SinkFailure(t *testing.T) {
	sinkErr := errors.New("sink down")
	s, err := NewSession(solver.Config{}, 2, solver.MoveSinkFunc(func(solver.Move) error {
		return sinkErr
	}))
	require.NoError(t, err)

	out, err := s.Turn("A", "B")
	require.True(t, errors.Is(err, sinkErr))
	require.Equal(t, Moved, out)
	require.Equal(t, uint64(1), s.Moves())
	require.Equal(t, []tower.Index{1}, s.Board().A.Discs())
	require.Equal(t, []tower.Index{0}, s.Board().B.Discs())

	out, err = s.Turn("A", "B")
	require.True(t, errors.Is(err, tower.ErrIllegalMove))
	require.Equal(t, Rejected, out)
	require.Equal(t, uint64(1), s.Moves())
}

func TestSession_BadInput(t *testing.T) {
	s, err := NewSession(solver.Config{}, 3, nil)
	require.NoError(t, err)

	for _, turn := range [][2]string{{"", "B"}, {"A", "Z"}, {"AB", "C"}, {"A", "a"}} {
		out, err := s.Turn(turn[0], turn[1])
		require.Equal(t, Rejected, out, turn)
		require.True(t, errors.Is(err, ErrBadInput), turn)
	}
	require.Zero(t, s.Moves())
	require.NoError(t, s.Board().Check())
}

func TestSession_Quit(t *testing.T) {
	s, err := NewSession(solver.Config{}, 3, nil)
	require.NoError(t, err)

	out, err := s.Turn("q", "")
	require.NoError(t, err)
	require.Equal(t, Quit, out)

	out, err = s.Turn("A", " Q")
	require.NoError(t, err)
	require.Equal(t, Quit, out)
	require.Zero(t, s.Moves())

	require.True(t, IsQuit("q\n"))
	require.False(t, IsQuit("A"))
}

func TestNewSession_TooManyDiscs(t *testing.T) {
	_, err := NewSession(solver.Config{}, tower.MaxDiscs+1, nil)
	require.True(t, errors.Is(err, tower.ErrTooManyDiscs))
}
