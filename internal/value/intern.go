package value

// internTable is the content-addressed cache of string objects: two
// calls to Intern with equal content always return the same *Object, so
// property-key comparisons can use pointer identity instead of content
// comparison. It is process-wide, matching the single global intern
// table of the reference implementation this package is modeled on.
var internTable = make(map[string]*Object)

// EmptyString is the distinguished interned string for "", allocated at
// package init with no prototype. Object.Name does not use it: an
// untagged object has a nil Name.
var EmptyString = newStringObject("", nil)

// StringProto is patched in by every run of the builtin package's
// bootstrap step, before any user code runs, so that every string interned from
// then on (including ones interned during bootstrap itself, after this
// assignment) carries the correct prototype pointer. A nil StringProto
// simply means newly interned strings are rootless, which is harmless
// for any interpreter state reachable before bootstrap completes.
var StringProto *Object

func init() {
	internTable[""] = EmptyString
}

// Intern returns the canonical string object for s, allocating one on
// first use.
func Intern(s string) *Object {
	if s == "" {
		return EmptyString
	}
	if o, ok := internTable[s]; ok {
		return o
	}
	o := newStringObject(s, StringProto)
	internTable[s] = o
	return o
}
