package timeunit

type Kind string

const (
	KindHour     Kind = "hour"
	KindDay      Kind = "day"
	KindMonth    Kind = "month"
	KindInterval Kind = "interval"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindHour, KindDay, KindMonth, KindInterval:
		return true
	default:
		return false
	}
}

// DerivesFromDates reports whether the built-in kind bills by elapsed
// calendar time. Custom kinds registered with a duration function are
// date-derived regardless of this.
func (k Kind) DerivesFromDates() bool {
	return k == KindInterval
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownUnit
	}
	return k, nil
}

// defaultRounding matches the precision of the seeded time units of
// measure (two decimal places).
const defaultRounding = 0.01

// Registry maps rental granularities to their unit definitions.
// Additional granularities may be registered as long as date-derived
// ones supply a duration function; resolver logic never changes.
type Registry struct {
	units map[Kind]TimeUnit
}

func NewRegistry() *Registry {
	r := &Registry{units: make(map[Kind]TimeUnit)}

	hour, _ := New(KindHour, "Hour(s)", defaultRounding, nil)
	day, _ := New(KindDay, "Day(s)", defaultRounding, nil)
	month, _ := New(KindMonth, "Month(s)", defaultRounding, nil)
	interval, _ := New(KindInterval, "Interval", defaultRounding, IntervalDays)

	for _, u := range []TimeUnit{hour, day, month, interval} {
		r.units[u.Kind()] = u
	}
	return r
}

func (r *Registry) Register(u TimeUnit) error {
	if _, ok := r.units[u.Kind()]; ok {
		return ErrDuplicateUnit
	}
	r.units[u.Kind()] = u
	return nil
}

func (r *Registry) Resolve(kind Kind) (TimeUnit, error) {
	u, ok := r.units[kind]
	if !ok {
		return TimeUnit{}, ErrUnknownUnit
	}
	return u, nil
}

func (r *Registry) MustResolve(kind Kind) TimeUnit {
	u, err := r.Resolve(kind)
	if err != nil {
		panic(err)
	}
	return u
}
