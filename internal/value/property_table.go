package value

// PropertyTable is an insertion-ordered map keyed by interned string
// identity (pointer equality), matching the one iteration order the
// language guarantees for a freshly built object.
type PropertyTable struct {
	index map[*Object]int
	keys  []*Object
	vals  []Value
}

func NewPropertyTable() *PropertyTable {
	return &PropertyTable{index: make(map[*Object]int)}
}

func (t *PropertyTable) Get(key *Object) (Value, bool) {
	i, ok := t.index[key]
	if !ok {
		return Value{}, false
	}
	return t.vals[i], true
}

// Set inserts key if absent, or overwrites its existing slot in place
// (preserving its original position) if present.
func (t *PropertyTable) Set(key *Object, v Value) {
	if i, ok := t.index[key]; ok {
		t.vals[i] = v
		return
	}
	t.index[key] = len(t.keys)
	t.keys = append(t.keys, key)
	t.vals = append(t.vals, v)
}

// SetIfExists overwrites key's slot only if it is already present,
// reporting whether it did so. Used for local-variable assignment,
// which must never silently create a binding in the wrong scope.
func (t *PropertyTable) SetIfExists(key *Object, v Value) bool {
	i, ok := t.index[key]
	if !ok {
		return false
	}
	t.vals[i] = v
	return true
}

// Keys returns the property keys in insertion order.
func (t *PropertyTable) Keys() []*Object {
	out := make([]*Object, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *PropertyTable) Len() int { return len(t.keys) }
