// Package slider implements the value and drag state of a Fluent slider.
//
// A State is owned by exactly one component and mutated serially by the host's
// pointer and keyboard dispatch. It cycles between Idle and Dragging; while
// dragging the pointer position is tracked continuously and snapping to steps
// is deferred until the drag ends.
package slider

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

// Phase is the state-machine phase of a slider.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Range is a closed value interval. Start must not exceed End.
type Range struct {
	Start float64
	End   float64
}

// Span returns End-Start.
func (r Range) Span() float64 {
	return r.End - r.Start
}

// Clamp clamps v into the range. NaN maps to Start.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Start {
		return r.Start
	}
	if v > r.End {
		return r.End
	}
	return v
}

// Lerp maps a fraction in [0,1] onto the range.
func (r Range) Lerp(fraction float64) float64 {
	return r.Start + (r.End-r.Start)*fraction
}

// Fraction maps a value onto [0,1]. A degenerate range yields 0.
func (r Range) Fraction(v float64) float64 {
	span := r.Span()
	if span <= 0 {
		return 0
	}
	return clamp01((v - r.Start) / span)
}

// Options configure a new State. Steps, Range, Snap and ThumbRadius are fixed
// for the lifetime of the state.
type Options struct {
	Value float64
	Range Range
	// Steps is the number of interior subdivisions; 0 means continuous.
	Steps int
	Snap  bool
	// ThumbRadius insets the usable track so the thumb never overruns its ends.
	ThumbRadius float64
	Listener    Listener
}

// DefaultOptions returns a continuous 0..1 slider.
func DefaultOptions() Options {
	return Options{Range: Range{Start: 0, End: 1}, Snap: true}
}

// State holds a slider's value, its drag tracking and its step candidates.
type State struct {
	value         float64
	valueRange    Range
	steps         int
	snap          bool
	thumbRadius   float64
	stepFractions []float64

	phase       Phase
	rawFraction float64
	rawOffset   float64

	listener Listener
}

// New validates opts and returns an idle State.
func New(opts Options) (*State, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	s := &State{
		valueRange:    opts.Range,
		steps:         opts.Steps,
		snap:          opts.Snap,
		thumbRadius:   opts.ThumbRadius,
		stepFractions: stepFractions(opts.Steps),
		listener:      opts.Listener,
	}
	s.value = s.valueRange.Clamp(opts.Value)
	s.rawFraction = s.valueRange.Fraction(s.value)
	return s, nil
}

func validateOptions(opts Options) error {
	r := opts.Range
	if !isFinite(r.Start) || !isFinite(r.End) {
		return fluenterrors.NewValidationError("range", "bounds must be finite", nil)
	}
	if r.Start > r.End {
		return fluenterrors.NewValidationError("range", fmt.Sprintf("start %g exceeds end %g", r.Start, r.End), nil)
	}
	if opts.Steps < 0 {
		return fluenterrors.NewValidationError("steps", fmt.Sprintf("must be non-negative, got %d", opts.Steps), nil)
	}
	if opts.ThumbRadius < 0 || !isFinite(opts.ThumbRadius) {
		return fluenterrors.NewValidationError("thumb_radius", "must be a finite non-negative number", nil)
	}
	return nil
}

// stepFractions returns steps+2 evenly spaced points in [0,1], endpoints included.
func stepFractions(steps int) []float64 {
	return floats.Span(make([]float64, steps+2), 0, 1)
}

// Value returns the current value.
func (s *State) Value() float64 { return s.value }

// Range returns the value range.
func (s *State) Range() Range { return s.valueRange }

// Steps returns the number of interior subdivisions.
func (s *State) Steps() int { return s.steps }

// Snap reports whether the value snaps to steps when a drag ends.
func (s *State) Snap() bool { return s.snap }

// ThumbRadius returns the track inset.
func (s *State) ThumbRadius() float64 { return s.thumbRadius }

// Phase returns the current state-machine phase.
func (s *State) Phase() Phase { return s.phase }

// IsDragging reports whether a drag is in progress.
func (s *State) IsDragging() bool { return s.phase == Dragging }

// RawFraction is the continuous thumb position in [0,1], decoupled from the
// stepped value until the drag ends.
func (s *State) RawFraction() float64 { return s.rawFraction }

// RawOffset is the accumulated pointer offset along the track.
func (s *State) RawOffset() float64 { return s.rawOffset }

// StepFractions returns a copy of the step candidates as fractions.
func (s *State) StepFractions() []float64 {
	out := make([]float64, len(s.stepFractions))
	copy(out, s.stepFractions)
	return out
}

// StepValues returns the step candidates mapped onto the value range.
func (s *State) StepValues() []float64 {
	out := make([]float64, len(s.stepFractions))
	for i, f := range s.stepFractions {
		out[i] = s.valueRange.Lerp(f)
	}
	return out
}

// SetListener replaces the listener. A nil listener silences notifications.
func (s *State) SetListener(l Listener) {
	s.listener = l
}

// SetValue assigns a value from outside the drag gesture. The value is clamped
// into range; when idle the raw fraction follows it.
func (s *State) SetValue(v float64) {
	s.value = s.valueRange.Clamp(v)
	if s.phase != Dragging {
		s.rawFraction = s.valueRange.Fraction(s.value)
	}
}

// StartDragging enters Dragging and jumps the thumb to pointerOffset.
func (s *State) StartDragging(pointerOffset, trackWidth float64) {
	s.phase = Dragging
	s.rawOffset = pointerOffset
	s.track(trackWidth)
}

// UpdateDelta moves the tracked pointer by delta. It is ignored while idle.
func (s *State) UpdateDelta(pointerDelta, trackWidth float64) {
	if s.phase != Dragging {
		return
	}
	s.rawOffset += pointerDelta
	s.track(trackWidth)
}

// StopDragging ends the gesture, snapping to the nearest step when enabled,
// and always reports the final value to ValueChangeFinished.
func (s *State) StopDragging(trackWidth float64) {
	s.phase = Idle
	if s.steps > 0 && s.snap {
		s.value = s.NearestValue()
	}
	s.rawFraction = s.valueRange.Fraction(s.value)
	s.rawOffset = s.offsetForFraction(s.rawFraction, trackWidth)
	s.notifyFinished()
}

// Step nudges the value by one step in the sign of direction: to the adjacent
// step candidate when steps are configured, otherwise by a hundredth of the range.
func (s *State) Step(direction int) {
	if direction == 0 || s.phase == Dragging {
		return
	}

	var next float64
	if s.steps > 0 {
		values := s.StepValues()
		idx := nearestIndex(values, s.value)
		switch {
		case direction > 0 && values[idx] <= s.value:
			idx++
		case direction < 0 && values[idx] >= s.value:
			idx--
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(values) {
			idx = len(values) - 1
		}
		next = values[idx]
	} else {
		delta := s.valueRange.Span() / 100
		if direction < 0 {
			delta = -delta
		}
		next = s.value + delta
	}

	s.SetValue(next)
	s.notifyChanged()
	s.notifyFinished()
}

// NearestValue returns the step candidate closest to the current value. On an
// exact tie the lower candidate wins.
func (s *State) NearestValue() float64 {
	values := s.StepValues()
	return values[nearestIndex(values, s.value)]
}

// ThumbPosition returns the thumb centre along a track of the given width.
func (s *State) ThumbPosition(trackWidth float64) float64 {
	return s.offsetForFraction(s.rawFraction, trackWidth)
}

func (s *State) track(trackWidth float64) {
	s.rawFraction = s.fractionForOffset(s.rawOffset, trackWidth)
	s.value = s.valueRange.Clamp(s.valueRange.Lerp(s.rawFraction))
	s.notifyChanged()
}

func (s *State) fractionForOffset(offset, trackWidth float64) float64 {
	usable := trackWidth - 2*s.thumbRadius
	if usable <= 0 || math.IsNaN(usable) {
		return 0
	}
	return clamp01((offset - s.thumbRadius) / usable)
}

func (s *State) offsetForFraction(fraction, trackWidth float64) float64 {
	usable := math.Max(trackWidth-2*s.thumbRadius, 0)
	return s.thumbRadius + fraction*usable
}

func (s *State) notifyChanged() {
	if s.listener != nil {
		s.listener.ValueChanged(s.value)
	}
}

func (s *State) notifyFinished() {
	if s.listener != nil {
		s.listener.ValueChangeFinished(s.value)
	}
}

// nearestIndex returns the index of the candidate with the minimum absolute
// distance to v; floats.MinIdx keeps the lowest index on ties.
func nearestIndex(candidates []float64, v float64) int {
	distances := make([]float64, len(candidates))
	for i, c := range candidates {
		distances[i] = math.Abs(c - v)
	}
	return floats.MinIdx(distances)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
