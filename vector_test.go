package rbvec

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestZeroVectorIsEmpty(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	requireT := require.New(t)
	//
	var v Vector[int]
	requireT.True(v.IsVoid())
	requireT.Equal(0, v.Len())
	requireT.Equal(1, v.Depth())
	requireT.Equal("[]", v.String())
	_, ok := v.Min()
	requireT.False(ok)
	_, err := v.Get(0)
	requireT.ErrorIs(err, ErrIndexOutOfBounds)

	w := v.Appended(7)
	requireT.True(v.IsVoid())
	requireT.Equal(1, w.Len())
	requireT.Equal("[7]", w.String())
}

func TestVectorScenario(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	requireT := require.New(t)
	//
	v := Empty[int]()
	for _, x := range []int{3, 2, 5, 0, 1, 7, 8, 10} {
		v = v.Appended(x)
	}
	requireT.Equal(8, v.Len())
	requireT.Equal(3, v.Depth())
	requireT.True(v.IsFull())
	requireT.Equal(1, v.BranchingBits())

	x, err := v.Get(3)
	requireT.NoError(err)
	requireT.Equal(0, x)

	for _, c := range []struct{ i, j, want int }{{2, 5, 0}, {4, 7, 1}, {0, 2, 2}} {
		m, err := v.MinSlice(c.i, c.j)
		requireT.NoError(err)
		requireT.Equal(c.want, m, "MinSlice(%d, %d)", c.i, c.j)
	}

	u, err := v.Updated(5, 166)
	requireT.NoError(err)
	x, _ = v.Get(5)
	requireT.Equal(7, x)
	x, _ = u.Get(5)
	requireT.Equal(166, x)
	m, _ := u.MinSlice(4, 7)
	requireT.Equal(1, m)

	_, err = v.Get(v.Len())
	requireT.ErrorIs(err, ErrIndexOutOfBounds)
	_, err = v.Get(-1)
	requireT.ErrorIs(err, ErrIndexOutOfBounds)
	_, err = v.MinSlice(3, 1)
	requireT.ErrorIs(err, ErrInvalidRange)
	_, err = v.Updated(8, 0)
	requireT.ErrorIs(err, ErrIndexOutOfBounds)
}

func TestVectorDepthGrowth(t *testing.T) {
	requireT := require.New(t)

	v, err := NewVector[int64](2)
	requireT.NoError(err)
	v = v.Appended(1).Appended(2)
	for !v.IsFull() {
		v = v.Appended(int64(v.Len() + 1))
	}
	requireT.Equal(4, v.Len())
	depth := v.Depth()
	w := v.Appended(99)
	requireT.Equal(depth+1, w.Depth())
	requireT.Equal(v.Values(), w.Values()[:v.Len()])
}

func TestNewVectorRejectsInvalidBranching(t *testing.T) {
	_, err := NewVector[int](-3)
	require.Error(t, err)
	_, err = NewBuilderWithBranching[int](42)
	require.Error(t, err)
}

func TestVectorMatchesSliceOracle(t *testing.T) {
	requireT := require.New(t)
	rnd := rand.New(rand.NewSource(3))

	for _, bits := range []int{1, 2, 5} {
		b, err := NewBuilderWithBranching[float64](bits)
		requireT.NoError(err)
		values := lo.Map(lo.Range(120), func(int, int) float64 { return rnd.Float64()*200 - 100 })
		requireT.NoError(b.Append(values...))
		v := b.Vector()
		requireT.Equal(values, v.Values())

		m, ok := v.Min()
		requireT.True(ok)
		requireT.Equal(lo.Min(values), m)

		for round := 0; round < 500; round++ {
			i := rnd.Intn(len(values))
			j := i + rnd.Intn(len(values)-i)
			got, err := v.MinSlice(i, j)
			requireT.NoError(err)
			requireT.Equal(lo.Min(values[i:j+1]), got, "B=%d MinSlice(%d, %d)", bits, i, j)
		}
	}
}

func TestAppendMonotonicity(t *testing.T) {
	requireT := require.New(t)

	v := FromSlice(5, 3, 9)
	w := v.Appended(4)
	requireT.Equal(v.Len()+1, w.Len())
	x, err := w.Get(v.Len())
	requireT.NoError(err)
	requireT.Equal(4, x)
	for i, want := range v.All() {
		got, err := w.Get(i)
		requireT.NoError(err)
		requireT.Equal(want, got)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	requireT := require.New(t)

	base := FromSlice(lo.Range(256)...)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			v, err := base.Updated(g*16, -g)
			if err != nil {
				errs <- err
				return
			}
			if m, _ := v.MinSlice(g*16, g*16+15); m != -g {
				errs <- errors.New("derived version reports wrong minimum")
			}
			if m, _ := base.MinSlice(g*16, g*16+15); m != g*16 {
				errs <- errors.New("base version changed")
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		requireT.NoError(err)
	}
}
