package domain

// encoder is satisfied by every entity that can serialize itself into a
// request document fragment.
type encoder interface {
	Encode(debug bool) map[string]any
}

// registry is an insertion-ordered collection of model entities keyed by
// their own identity field. Insertion enforces key agreement, uniqueness and
// an optional cardinality ceiling, so a registry can only hold consistent
// entries.
type registry[K comparable, V encoder] struct {
	order   []K
	items   map[K]V
	selfKey func(V) K
	limit   int // 0 means unbounded

	field       string
	errExists   *ModelError
	errNotFound *ModelError
	errEmpty    *ModelError
}

func newRegistry[K comparable, V encoder](selfKey func(V) K, limit int, field string, exists, notFound, empty *ModelError) *registry[K, V] {
	return &registry[K, V]{
		items:       make(map[K]V),
		selfKey:     selfKey,
		limit:       limit,
		field:       field,
		errExists:   exists,
		errNotFound: notFound,
		errEmpty:    empty,
	}
}

func (r *registry[K, V]) insert(key K, v V) error {
	if key != r.selfKey(v) {
		return &ValidationError{Field: r.field, Constraint: ConstraintKeyMatch}
	}
	if _, ok := r.items[key]; ok {
		return r.errExists
	}
	if r.limit > 0 && len(r.order) >= r.limit {
		return &ValidationError{Field: r.field, Constraint: ConstraintMaxPoints}
	}
	r.items[key] = v
	r.order = append(r.order, key)
	return nil
}

func (r *registry[K, V]) remove(key K) error {
	if _, ok := r.items[key]; !ok {
		return r.errNotFound
	}
	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *registry[K, V]) get(key K) (V, bool) {
	v, ok := r.items[key]
	return v, ok
}

func (r *registry[K, V]) size() int { return len(r.order) }

// encodeAll serializes every entry in insertion order. An empty registry is
// an error because the engine rejects requests with a missing section.
func (r *registry[K, V]) encodeAll(debug bool) ([]map[string]any, error) {
	if len(r.order) == 0 {
		return nil, r.errEmpty
	}
	docs := make([]map[string]any, 0, len(r.order))
	for _, k := range r.order {
		docs = append(docs, r.items[k].Encode(debug))
	}
	return docs, nil
}
