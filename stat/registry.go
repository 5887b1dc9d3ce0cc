package stat

import (
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/playersim/oerror"
)

// BlendKind is the rule used to combine the sources of a stat into a single value.
type BlendKind uint8

const (
	// Multiplicative stats are the product of all source values, applied to a base of 1.
	Multiplicative BlendKind = iota
	// FlatSum stats are the sum of all source values, applied to a base of 0.
	FlatSum
)

func (k BlendKind) String() string {
	if k == FlatSum {
		return "flat sum"
	}
	return "multiplicative"
}

// Source is a single named contribution to a stat.
type Source struct {
	ID    string
	Value float64
}

type entry struct {
	kind    BlendKind
	sources *orderedmap.OrderedMap[string, float64]

	blended float64
	dirty   bool
}

// Registry holds the stats of a single entity. It is not safe for concurrent use: it is owned by the entity
// and only read and written from its tick.
type Registry struct {
	stats map[string]*entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{stats: make(map[string]*entry)}
}

// Register declares a stat. Registering a stat that already exists does nothing, and the kind it was first
// registered with is kept.
func (r *Registry) Register(name string, kind BlendKind) *Registry {
	if _, ok := r.stats[name]; ok {
		return r
	}
	r.stats[name] = &entry{
		kind:    kind,
		sources: orderedmap.NewOrderedMap[string, float64](),
		dirty:   true,
	}
	return r
}

// Registered returns true if the stat passed was registered.
func (r *Registry) Registered(name string) bool {
	_, ok := r.stats[name]
	return ok
}

// Kind returns the blend kind of the stat passed.
func (r *Registry) Kind(name string) (BlendKind, error) {
	e, err := r.entry(name)
	if err != nil {
		return 0, err
	}
	return e.kind, nil
}

// SetSource sets the contribution of a source to a stat, replacing any earlier contribution of that source.
func (r *Registry) SetSource(name, source string, value float64) error {
	e, err := r.entry(name)
	if err != nil {
		return err
	}
	if old, ok := e.sources.Get(source); ok && old == value {
		return nil
	}
	e.sources.Set(source, value)
	e.dirty = true
	return nil
}

// RemoveSource removes the contribution of a source from a stat. Removing a source that isn't present does
// nothing.
func (r *Registry) RemoveSource(name, source string) error {
	e, err := r.entry(name)
	if err != nil {
		return err
	}
	if e.sources.Delete(source) {
		e.dirty = true
	}
	return nil
}

// Sources returns the contributions to a stat in the order they were first set.
func (r *Registry) Sources(name string) ([]Source, error) {
	e, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, 0, e.sources.Len())
	for el := e.sources.Front(); el != nil; el = el.Next() {
		sources = append(sources, Source{ID: el.Key, Value: el.Value})
	}
	return sources, nil
}

// Blended returns the combined value of all sources of a stat. The result is cached until a source of the
// stat changes.
func (r *Registry) Blended(name string) (float64, error) {
	e, err := r.entry(name)
	if err != nil {
		return 0, err
	}
	if e.dirty {
		e.blended = e.blend()
		e.dirty = false
	}
	return e.blended, nil
}

// Names returns the names of all registered stats, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.stats))
	for name := range r.stats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) entry(name string) (*entry, error) {
	e, ok := r.stats[name]
	if !ok {
		return nil, oerror.New("stat %q: %w", name, oerror.ErrNotRegistered)
	}
	return e, nil
}

// blend folds the sources in order of their IDs, so that the result does not depend on the order in which
// the sources were set.
func (e *entry) blend() float64 {
	ids := make([]string, 0, e.sources.Len())
	for el := e.sources.Front(); el != nil; el = el.Next() {
		ids = append(ids, el.Key)
	}
	slices.Sort(ids)

	v := 1.0
	if e.kind == FlatSum {
		v = 0
	}
	for _, id := range ids {
		s, _ := e.sources.Get(id)
		if e.kind == FlatSum {
			v += s
		} else {
			v *= s
		}
	}
	return v
}
