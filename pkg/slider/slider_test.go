package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

func newState(t *testing.T, opts Options) (*State, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	opts.Listener = rec
	s, err := New(opts)
	require.NoError(t, err)
	return s, rec
}

func TestNewRejectsContractViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		opts  Options
		field string
	}{
		{name: "inverted range", opts: Options{Range: Range{Start: 10, End: 0}}, field: "range"},
		{name: "nan bound", opts: Options{Range: Range{Start: math.NaN(), End: 1}}, field: "range"},
		{name: "infinite bound", opts: Options{Range: Range{Start: 0, End: math.Inf(1)}}, field: "range"},
		{name: "negative steps", opts: Options{Range: Range{End: 1}, Steps: -1}, field: "steps"},
		{name: "negative thumb radius", opts: Options{Range: Range{End: 1}, ThumbRadius: -2}, field: "thumb_radius"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tc.opts)
			require.Nil(t, s)

			var validationErr *fluenterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNewClampsInitialValue(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Value: 150, Range: Range{Start: 0, End: 100}})
	assert.Equal(t, 100.0, s.Value())
	assert.Equal(t, 1.0, s.RawFraction())
	assert.Equal(t, Idle, s.Phase())
}

func TestStepFractions(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Range: Range{Start: 0, End: 100}, Steps: 3})
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, s.StepFractions())
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, s.StepValues())

	continuous, _ := newState(t, Options{Range: Range{Start: 0, End: 1}})
	assert.Equal(t, []float64{0, 1}, continuous.StepFractions())
}

func TestSetValueClampsToNearestBound(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Value: 5, Range: Range{Start: -10, End: 10}})

	for _, v := range []float64{-11, -1e9, math.Inf(-1)} {
		s.SetValue(v)
		assert.Equal(t, -10.0, s.Value())
		assert.Equal(t, 0.0, s.RawFraction())
	}
	for _, v := range []float64{10.5, 1e9, math.Inf(1)} {
		s.SetValue(v)
		assert.Equal(t, 10.0, s.Value())
		assert.Equal(t, 1.0, s.RawFraction())
	}

	s.SetValue(0)
	assert.Equal(t, 0.5, s.RawFraction())
}

func TestSetValueWhileDraggingKeepsRawFraction(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Range: Range{Start: 0, End: 100}})
	s.StartDragging(30, 100)
	s.SetValue(90)

	assert.Equal(t, 90.0, s.Value())
	assert.InDelta(t, 0.3, s.RawFraction(), 1e-9)
}

func TestDragSnapsToNearestStepOnRelease(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, Options{Range: Range{Start: 0, End: 100}, Steps: 3, Snap: true})

	s.StartDragging(57, 100)
	assert.True(t, s.IsDragging())
	assert.InDelta(t, 57, s.Value(), 1e-9, "no snapping while dragging")

	s.StopDragging(100)
	assert.False(t, s.IsDragging())
	assert.Equal(t, 50.0, s.Value())
	assert.Equal(t, 0.5, s.RawFraction())
	assert.Equal(t, 50.0, s.RawOffset())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, 50.0, last)
	assert.Len(t, rec.Changes, 1)
}

func TestDragSnapUsesInteriorStepCount(t *testing.T) {
	t.Parallel()

	// Four interior steps give six candidates: 0, 20, 40, 60, 80, 100.
	s, _ := newState(t, Options{Range: Range{Start: 0, End: 100}, Steps: 4, Snap: true})
	s.StartDragging(57, 100)
	s.StopDragging(100)
	assert.InDelta(t, 60.0, s.Value(), 1e-9)
}

func TestSnapDisabledKeepsDraggedValue(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, Options{Range: Range{Start: 0, End: 100}, Steps: 3, Snap: false})
	s.StartDragging(57, 100)
	s.StopDragging(100)
	assert.InDelta(t, 57.0, s.Value(), 1e-9)
	assert.Len(t, rec.Finishes, 1)
}

func TestContinuousSliderNeverSnaps(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, Options{Range: Range{Start: 0, End: 1}, Snap: true})

	s.StartDragging(0.1, 1)
	s.UpdateDelta(0.237, 1)
	before := s.Value()
	s.StopDragging(1)

	assert.Equal(t, before, s.Value())
	assert.InDelta(t, 0.337, s.Value(), 1e-9)
	assert.Equal(t, []float64{before}, rec.Finishes)
	assert.Len(t, rec.Changes, 2)
}

func TestThumbRadiusInsetsTrack(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Range: Range{Start: 0, End: 100}, ThumbRadius: 5})

	s.StartDragging(62, 110)
	assert.InDelta(t, 57, s.Value(), 1e-9)

	s.UpdateDelta(-100, 110)
	assert.Equal(t, 0.0, s.Value(), "pointer left of the inset clamps to start")
	assert.InDelta(t, -38, s.RawOffset(), 1e-9)

	s.UpdateDelta(500, 110)
	assert.Equal(t, 100.0, s.Value(), "pointer right of the inset clamps to end")

	s.StopDragging(110)
	assert.Equal(t, 105.0, s.RawOffset())
	assert.Equal(t, 105.0, s.ThumbPosition(110))
}

func TestTrackNarrowerThanThumb(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Range: Range{Start: 0, End: 10}, ThumbRadius: 4})
	s.StartDragging(3, 6)
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, 0.0, s.RawFraction())
}

func TestUpdateDeltaIgnoredWhenIdle(t *testing.T) {
	t.Parallel()

	s, rec := newState(t, Options{Value: 0.4, Range: Range{Start: 0, End: 1}})
	s.UpdateDelta(0.5, 1)
	assert.Equal(t, 0.4, s.Value())
	assert.Empty(t, rec.Changes)
}

func TestNearestValueTieBreaksLow(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Value: 50, Range: Range{Start: 0, End: 100}, Steps: 0})
	// Candidates are 0 and 100; 50 is equidistant.
	assert.Equal(t, 0.0, s.NearestValue())
}

func TestStepNudges(t *testing.T) {
	t.Parallel()

	stepped, rec := newState(t, Options{Value: 30, Range: Range{Start: 0, End: 100}, Steps: 3, Snap: true})
	stepped.Step(1)
	assert.Equal(t, 50.0, stepped.Value())
	stepped.Step(1)
	assert.Equal(t, 75.0, stepped.Value())
	stepped.Step(-1)
	assert.Equal(t, 50.0, stepped.Value())
	stepped.Step(1)
	stepped.Step(1)
	stepped.Step(1)
	assert.Equal(t, 100.0, stepped.Value(), "stepping stops at the end")
	assert.Len(t, rec.Finishes, 6)

	continuous, _ := newState(t, Options{Value: 0.5, Range: Range{Start: 0, End: 1}})
	continuous.Step(-1)
	assert.InDelta(t, 0.49, continuous.Value(), 1e-9)
}

func TestDegenerateRange(t *testing.T) {
	t.Parallel()

	s, _ := newState(t, Options{Value: 3, Range: Range{Start: 5, End: 5}, Steps: 2, Snap: true})
	assert.Equal(t, 5.0, s.Value())

	s.StartDragging(40, 100)
	s.StopDragging(100)
	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, 0.0, s.RawFraction())
}

func TestNilListenerIsAllowed(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Range: Range{Start: 0, End: 1}, Steps: 1, Snap: true})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.StartDragging(0.7, 1)
		s.StopDragging(1)
	})
	assert.Equal(t, 0.5, s.Value())

	s.Step(-1)
	assert.Equal(t, 0.0, s.Value())
}

func TestListenerFuncs(t *testing.T) {
	t.Parallel()

	var changed, finished []float64
	s, err := New(Options{
		Range: Range{Start: 0, End: 10},
		Listener: ListenerFuncs{
			OnChange:   func(v float64) { changed = append(changed, v) },
			OnFinished: func(v float64) { finished = append(finished, v) },
		},
	})
	require.NoError(t, err)

	s.StartDragging(2, 10)
	s.UpdateDelta(1, 10)
	s.StopDragging(10)

	assert.Equal(t, []float64{2, 3}, changed)
	assert.Equal(t, []float64{3}, finished)
	assert.Equal(t, "idle", s.Phase().String())
}
