package slider

// Listener observes value changes of a State. ValueChanged fires on every drag
// update; ValueChangeFinished fires once per completed gesture with the final,
// possibly snapped, value.
type Listener interface {
	ValueChanged(value float64)
	ValueChangeFinished(value float64)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnChange   func(value float64)
	OnFinished func(value float64)
}

// ValueChanged implements Listener.
func (l ListenerFuncs) ValueChanged(value float64) {
	if l.OnChange != nil {
		l.OnChange(value)
	}
}

// ValueChangeFinished implements Listener.
func (l ListenerFuncs) ValueChangeFinished(value float64) {
	if l.OnFinished != nil {
		l.OnFinished(value)
	}
}

// Recorder is a Listener that keeps every reported value, in order.
type Recorder struct {
	Changes  []float64
	Finishes []float64
}

// ValueChanged implements Listener.
func (r *Recorder) ValueChanged(value float64) {
	r.Changes = append(r.Changes, value)
}

// ValueChangeFinished implements Listener.
func (r *Recorder) ValueChangeFinished(value float64) {
	r.Finishes = append(r.Finishes, value)
}

// Last returns the most recently finished value and whether one exists.
func (r *Recorder) Last() (float64, bool) {
	if len(r.Finishes) == 0 {
		return 0, false
	}
	return r.Finishes[len(r.Finishes)-1], true
}
