package movelog

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/insolar/hanoi/hanoi/solver"
)

func solve(t *testing.T, n int) []solver.Move {
	rec := &solver.Recorder{}
	_, err := solver.RunIterative(solver.Config{}, n, rec)
	require.NoError(t, err)
	return rec.Moves
}

func TestEncode_Text(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, Encode(&buf, FormatText, solve(t, 2)))
	require.Equal(t, "0: A -> B\n1: A -> C\n0: B -> C\n", buf.String())
}

func TestEncode_JSON(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, Encode(&buf, FormatJSON, solve(t, 1)))
	require.JSONEq(t, `[{"step":1,"disc":0,"from":"A","to":"C"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatJSON, nil))
	require.JSONEq(t, `[]`, buf.String())
}

func TestEncode_YAML(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, Encode(&buf, FormatYAML, solve(t, 1)))
	require.Equal(t, "- step: 1\n  disc: 0\n  from: A\n  to: C\n", buf.String())
}

func TestEncodeDecode(t *testing.T) {
	moves := solve(t, 6)
	for _, f := range []Format{FormatJSON, FormatYAML} {
		buf := bytes.Buffer{}
		require.NoError(t, Encode(&buf, f, moves))
		decoded, err := Decode(&buf, f)
		require.NoError(t, err, f)
		require.Equal(t, moves, decoded, f)
	}

	_, err := Decode(&bytes.Buffer{}, FormatText)
	require.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestEncode_None(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, Encode(&buf, FormatNone, solve(t, 3)))
	require.Zero(t, buf.Len())

	require.True(t, errors.Is(Encode(&buf, Format("xml"), nil), ErrUnknownFormat))
}

func TestTextWriter_Streaming(t *testing.T) {
	buf := bytes.Buffer{}
	tw := NewTextWriter(&buf)

	_, err := solver.RunRecursive(solver.Config{}, 3, tw)
	require.NoError(t, err)
	require.NoError(t, tw.Flush())
	require.Equal(t, 7, bytes.Count(buf.Bytes(), []byte("\n")))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("0: A -> C\n1: A -> B\n")))
}

func TestParseFormat(t *testing.T) {
	for in, f := range map[string]Format{
		"":     FormatText,
		"TEXT": FormatText,
		"json": FormatJSON,
		"yml":  FormatYAML,
		"yaml": FormatYAML,
		"none": FormatNone,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, f, got, in)
	}

	_, err := ParseFormat("xml")
	require.True(t, errors.Is(err, ErrUnknownFormat))

	require.True(t, FormatText.Streams())
	require.False(t, FormatJSON.Streams())
}
