package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
)

func mustGrid(t *testing.T, rows [][]uint8) *core.Grid {
	t.Helper()
	g, err := core.GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func TestNewErrors(t *testing.T) {
	g3x3, err := core.NewGrid(3, 3)
	require.NoError(t, err)
	nonBinary, err := core.NewGrid(3, 3)
	require.NoError(t, err)
	nonBinary.Cells()[0] = 2
	nonBinary.Cells()[1] = 1

	cases := []struct {
		name    string
		w, h    int
		initial *core.Grid
		err     error
	}{
		{"ZeroWidth", 0, 3, g3x3, ErrInvalidDimension},
		{"NegativeHeight", 3, -2, g3x3, ErrInvalidDimension},
		{"WidthMismatch", 4, 3, g3x3, ErrShapeMismatch},
		{"HeightMismatch", 3, 4, g3x3, ErrShapeMismatch},
		{"NilState", 3, 3, nil, ErrShapeMismatch},
		{"NonBinaryCell", 3, 3, nonBinary, core.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.w, tc.h, tc.initial)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, e)
		})
	}
}

func TestNewCopiesInitialState(t *testing.T) {
	initial := mustGrid(t, [][]uint8{{1, 0}, {0, 0}})
	e, err := New(2, 2, initial)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Generation())

	initial.Set(1, 1, true)
	assert.False(t, e.Grid().At(1, 1), "caller mutation leaked into the engine")
	assert.True(t, e.Grid().At(0, 0))
}

func TestNewFromRowsRejectsBadInput(t *testing.T) {
	_, err := NewFromRows([][]uint8{{0, 1}, {1}})
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = NewFromRows(nil)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewFromRows([][]uint8{{0, 3}})
	require.ErrorIs(t, err, core.ErrInvalidCell)
}

func TestDeadGridStaysDead(t *testing.T) {
	g, err := core.NewGrid(8, 6)
	require.NoError(t, err)
	e, err := New(8, 6, g)
	require.NoError(t, err)

	for grid := range e.Run(10) {
		require.Zero(t, grid.Alive())
	}
	assert.Equal(t, 10, e.Generation())
}

func TestLoneCellDies(t *testing.T) {
	e, err := NewFromRows([][]uint8{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	g := e.Step()
	assert.Zero(t, g.Alive())
	assert.Equal(t, 1, e.Generation())
}

func TestRuleTable(t *testing.T) {
	// Centre cell of a 3x3 board with n live neighbours drawn from the ring.
	ring := [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}
	for n := 0; n <= 8; n++ {
		for _, centre := range []bool{false, true} {
			g, err := core.NewGrid(3, 3)
			require.NoError(t, err)
			g.Set(1, 1, centre)
			for _, c := range ring[:n] {
				g.Set(c[0], c[1], true)
			}
			e, err := New(3, 3, g)
			require.NoError(t, err)

			want := n == 3 || (centre && n == 2)
			assert.Equal(t, want, e.Step().At(1, 1), "alive=%v neighbours=%d", centre, n)
		}
	}
}

func TestVerticalBlinkerScenario(t *testing.T) {
	initial, err := core.NewGrid(5, 5)
	require.NoError(t, err)
	for _, y := range []int{1, 2, 3} {
		initial.Set(2, y, true)
	}
	e, err := New(5, 5, initial)
	require.NoError(t, err)

	horizontal, err := core.NewGrid(5, 5)
	require.NoError(t, err)
	for _, x := range []int{1, 2, 3} {
		horizontal.Set(x, 2, true)
	}

	first := e.Step()
	assert.True(t, first.Equal(horizontal), "got\n%s", first)
	second := e.Step()
	assert.True(t, second.Equal(initial), "got\n%s", second)
	assert.True(t, first.Equal(horizontal), "snapshot changed after a later step")
}

func TestStepDeterministic(t *testing.T) {
	initial, err := RandomGrid(24, 16, 0.4, 99)
	require.NoError(t, err)

	a, err := New(24, 16, initial)
	require.NoError(t, err)
	b, err := New(24, 16, initial)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.True(t, a.Step().Equal(b.Step()), "diverged at generation %d", i+1)
	}
}

func TestRunYieldsExactlyEpochs(t *testing.T) {
	initial, err := RandomGrid(16, 12, 0.5, 5)
	require.NoError(t, err)

	e, err := New(16, 12, initial)
	require.NoError(t, err)
	count := 0
	for range e.Run(0) {
		count++
	}
	assert.Zero(t, count)
	assert.Zero(t, e.Generation())

	ref, err := New(16, 12, initial)
	require.NoError(t, err)

	k := 0
	for g := range e.Run(7) {
		k++
		require.True(t, g.Equal(ref.Step()), "grid %d differs from %d steps", k, k)
	}
	assert.Equal(t, 7, k)
	assert.Equal(t, 7, e.Generation())
	assert.True(t, e.Grid().Equal(ref.Grid()))
}

func TestRunNegativeEpochs(t *testing.T) {
	e, err := NewFromRows([][]uint8{{1, 1}, {1, 1}})
	require.NoError(t, err)
	for range e.Run(-3) {
		t.Fatal("negative epochs must yield nothing")
	}
}

func TestRunIsSingleUse(t *testing.T) {
	e, err := NewFromRows([][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
	require.NoError(t, err)
	seq := e.Run(3)
	for range seq {
	}
	for range seq {
		t.Fatal("second iteration must yield nothing")
	}
	assert.Equal(t, 3, e.Generation())
}

func TestRunStopsOnBreak(t *testing.T) {
	e, err := NewFromRows([][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
	require.NoError(t, err)
	for range e.Run(100) {
		if e.Generation() == 4 {
			break
		}
	}
	assert.Equal(t, 4, e.Generation())
}

func TestParametersReportProgress(t *testing.T) {
	e, err := NewFromRows([][]uint8{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
	require.NoError(t, err)
	e.Step()
	snap := e.Parameters()

	gen, ok := snap.Lookup("generation")
	require.True(t, ok)
	assert.Equal(t, "1", gen)
	pop, ok := snap.Lookup("population")
	require.True(t, ok)
	assert.Equal(t, "3", pop)
}

func BenchmarkStep(b *testing.B) {
	initial, err := RandomGrid(256, 256, 0.5, 1)
	if err != nil {
		b.Fatal(err)
	}
	e, err := New(256, 256, initial)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}
