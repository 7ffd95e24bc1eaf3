package inreplace

import (
	"testing"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/pattern"
	"github.com/arthur-debert/inreplace/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInreplacePairsNilOld(t *testing.T) {
	fsys, paths := setup(t, testutil.FileTree{"test": abc})

	_, err := InreplacePairs(PairsOptions{
		Path:  paths["test"],
		Pairs: []Pair{{Old: pattern.Literal("a"), New: "x"}, {Old: nil, New: "f"}},
		FS:    fsys,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	assert.Contains(t, err.Error(), "no old value")
	assert.Empty(t, fsys.Writes)
	assert.Equal(t, abc, testutil.ReadString(t, fsys, paths["test"]))
}

func TestInreplacePairsUsage(t *testing.T) {
	_, err := InreplacePairs(PairsOptions{Pairs: []Pair{{Old: pattern.Literal("a")}}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))

	_, err = InreplacePairs(PairsOptions{Path: "/work/test"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
}

func TestInreplacePairsAppliesInOrder(t *testing.T) {
	fsys, paths := setup(t, testutil.FileTree{"test": abc})

	_, err := InreplacePairs(PairsOptions{
		Path: paths["test"],
		Pairs: []Pair{
			{Old: pattern.Literal("a"), New: "b"},
			{Old: pattern.Literal("b"), New: "z"},
		},
		FS: fsys,
	})

	require.NoError(t, err)
	assert.Equal(t, "z\nz\nc\n", testutil.ReadString(t, fsys, paths["test"]))
}

func TestInreplacePairsNothingChanged(t *testing.T) {
	fsys, paths := setup(t, testutil.FileTree{"test": abc})

	_, err := InreplacePairs(PairsOptions{
		Path: paths["test"],
		Pairs: []Pair{
			{Old: pattern.Literal("d"), New: "f"},
			{Old: pattern.Literal("a"), New: "a"},
		},
		FS: fsys,
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoChange))
	assert.Contains(t, err.Error(), `expected replacement of "d" with "f"`)
	assert.Contains(t, err.Error(), `expected replacement of "a" with "a"`)
	assert.Empty(t, fsys.Writes)
}

func TestInreplacePairsWarn(t *testing.T) {
	fsys, paths := setup(t, testutil.FileTree{"test": abc})

	result, err := InreplacePairs(PairsOptions{
		Path:            paths["test"],
		Pairs:           []Pair{{Old: pattern.Literal("d"), New: "f"}},
		OnMissingChange: Warn,
		FS:              fsys,
	})

	require.NoError(t, err)
	assert.Len(t, result.Warnings(), 1)
	assert.Empty(t, fsys.Writes)
}

func TestPairString(t *testing.T) {
	assert.Equal(t, `"a" => "b"`, Pair{Old: pattern.Literal("a"), New: "b"}.String())
	assert.Equal(t, `<nil> => "b"`, Pair{New: "b"}.String())
}
