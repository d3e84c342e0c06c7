// Package env holds the interpreter's mutable run-time state: the
// global object, the active call-frame stack, the this/prev cells, and
// the four root prototypes and constructors installed during bootstrap.
// It is an explicit value threaded through the evaluator rather than
// package-level state, so a process can host more than one independent
// interpreter (as the test suite does).
package env

import "github.com/cwbudde/go-liscript/internal/value"

// Frame is one activation record on the call stack: the callee's own
// argument array, the this it was invoked with, and its local-variable
// blocks (always exactly one per frame, since the grammar has no
// nested-block syntax of its own).
type Frame struct {
	Arguments *value.Object
	This      value.Value
	Blocks    []*value.PropertyTable
}

// Env is the full mutable state of one interpreter instance.
type Env struct {
	Global *value.Object
	This   value.Value
	Prev   value.Value
	Frames []*Frame

	ProtoObject   *value.Object
	ProtoFunction *value.Object
	ProtoString   *value.Object
	ProtoArray    *value.Object

	CtorObject   *value.Object
	CtorFunction *value.Object
	CtorString   *value.Object
	CtorArray    *value.Object

	// KeyPrototype is the cached interned "prototype" key, used by
	// `func`'s named form and by `new`.
	KeyPrototype *value.Object
}

// New creates an Env around an already-constructed global object. The
// builtin package's Bootstrap is the only caller that should need this;
// everything else should go through pkg/liscript.New.
func New(global *value.Object) *Env {
	return &Env{Global: global, This: value.ObjectValue(global), Prev: value.Undefined()}
}

func (e *Env) PushFrame(f *Frame) { e.Frames = append(e.Frames, f) }

func (e *Env) PopFrame() { e.Frames = e.Frames[:len(e.Frames)-1] }

// CurrentFrame returns the innermost (most recently pushed) frame, or
// nil when the call stack is empty.
func (e *Env) CurrentFrame() *Frame {
	if len(e.Frames) == 0 {
		return nil
	}
	return e.Frames[len(e.Frames)-1]
}

// LookupLocal implements getl/atom-read semantics: search every block
// of every active frame, innermost first, then fall through to the
// global object's own prototype-chain lookup.
func (e *Env) LookupLocal(key *value.Object) (value.Value, bool) {
	for i := len(e.Frames) - 1; i >= 0; i-- {
		blocks := e.Frames[i].Blocks
		for j := len(blocks) - 1; j >= 0; j-- {
			if v, ok := blocks[j].Get(key); ok {
				return v, true
			}
		}
	}
	_, v, ok := value.FindMember(e.Global, key)
	return v, ok
}

// SetLocal implements setl: overwrite the innermost existing binding
// wherever it is found (frame blocks, then the global's prototype
// chain); if none exists, create a fresh one at the current frame's
// outermost block, or on the global object with no frame active.
func (e *Env) SetLocal(key *value.Object, v value.Value) {
	for i := len(e.Frames) - 1; i >= 0; i-- {
		blocks := e.Frames[i].Blocks
		for j := len(blocks) - 1; j >= 0; j-- {
			if blocks[j].SetIfExists(key, v) {
				return
			}
		}
	}
	if owner, _, ok := value.FindMember(e.Global, key); ok {
		owner.Props.Set(key, v)
		return
	}
	e.BindNew(key, v)
}

// BindNew creates a binding at the current frame's outermost block, or
// on the global object when no frame is active, overwriting in place
// if that exact slot already holds a binding for key.
func (e *Env) BindNew(key *value.Object, v value.Value) {
	if len(e.Frames) == 0 {
		e.Global.Props.Set(key, v)
		return
	}
	cur := e.Frames[len(e.Frames)-1]
	cur.Blocks[0].Set(key, v)
}
