package tree

// Result is a parse result folded from a Node, accessible either by name
// (Value) or, for the node it was built from, by its single main value
// (Get/Set — this is what a grammar.PostFunc sees through the
// grammar.ResultAccessor interface).
//
// Results are flattened as much as a tree allows: a name that occurs under
// more than one child becomes a list, a name that occurs once stays a
// scalar, and grandchildren are elevated to the same level as their parent
// whenever doing so can't collide with a sibling's name.
type Result struct {
	name   string
	asFlat bool
	values map[string]interface{}
}

// NewResult starts a result named name holding lexicon as its only value
// so far. asFlat controls how later AddItem calls merge in same-named
// values: flat results overwrite-then-listify on collision, non-flat
// results always hold a list.
func NewResult(name string, lexicon interface{}, asFlat bool) *Result {
	r := &Result{name: name, asFlat: asFlat, values: map[string]interface{}{}}
	if asFlat {
		r.values[name] = lexicon
	} else {
		r.values[name] = []interface{}{lexicon}
	}
	return r
}

// Set overwrites this result's own main value — used by to-parse-result
// folding to sync a parent's lexicon with its children's, and by
// grammar.PostFunc callbacks via ReplaceResultWith.
func (r *Result) Set(value interface{}) {
	r.values[r.name] = value
}

// Get returns this result's main value.
func (r *Result) Get() interface{} {
	return r.values[r.name]
}

// Value returns the value stored under name, or nil if none was ever
// added.
func (r *Result) Value(name string) interface{} {
	return r.values[name]
}

// Has reports whether name was ever added to this result.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Name returns this result's own name.
func (r *Result) Name() string { return r.name }

// Names returns every name held in this result.
func (r *Result) Names() []string {
	out := make([]string, 0, len(r.values))
	for k := range r.values {
		out = append(out, k)
	}
	return out
}

// AddItem records k => v, promoting the existing value to a list on a
// second same-named item (or always storing as a single-element list when
// this result is not flat).
func (r *Result) AddItem(k string, v interface{}) {
	existing, ok := r.values[k]
	if !ok {
		if r.asFlat {
			r.values[k] = v
		} else {
			r.values[k] = []interface{}{v}
		}
		return
	}
	if list, isList := existing.([]interface{}); isList {
		r.values[k] = append(list, v)
		return
	}
	r.values[k] = []interface{}{existing, v}
}

// AddResult merges another result into this one: flattened, every one of
// other's items is added directly; otherwise other itself is added under
// its own name.
func (r *Result) AddResult(other *Result, flatten bool) {
	if flatten {
		for _, k := range other.Names() {
			r.AddItem(k, other.values[k])
		}
		return
	}
	r.AddItem(other.Name(), other)
}
