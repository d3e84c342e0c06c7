package eval

import "github.com/cwbudde/go-liscript/internal/value"

// atomKeywords holds every atom that evaluates to something other than
// a local-variable read. Method values here close over nothing; they
// are plain (*Evaluator) functions picked out of the map by name.
var atomKeywords map[string]func(*Evaluator) (value.Value, error)

func init() {
	atomKeywords = map[string]func(*Evaluator) (value.Value, error){
		"global":    (*Evaluator).atomGlobal,
		"this":      (*Evaluator).atomThis,
		"undefined": (*Evaluator).atomUndefined,
		"null":      (*Evaluator).atomNull,
		"true":      (*Evaluator).atomTrue,
		"false":     (*Evaluator).atomFalse,
		"prev":      (*Evaluator).atomPrev,
		"arguments": (*Evaluator).atomArguments,
		"...":       (*Evaluator).atomEllipsis,
	}
}

func (ev *Evaluator) atomGlobal() (value.Value, error) {
	return value.ObjectValue(ev.Env.Global), nil
}

func (ev *Evaluator) atomThis() (value.Value, error) { return ev.Env.This, nil }

func (ev *Evaluator) atomUndefined() (value.Value, error) { return value.Undefined(), nil }

func (ev *Evaluator) atomNull() (value.Value, error) { return value.Null(), nil }

func (ev *Evaluator) atomTrue() (value.Value, error) { return value.Boolean(true), nil }

func (ev *Evaluator) atomFalse() (value.Value, error) { return value.Boolean(false), nil }

func (ev *Evaluator) atomPrev() (value.Value, error) { return ev.Env.Prev, nil }

// atomArguments yields the innermost active frame's own argument array,
// regardless of how many calls are nested above it.
func (ev *Evaluator) atomArguments() (value.Value, error) {
	cur := ev.Env.CurrentFrame()
	if cur == nil {
		return value.Undefined(), nil
	}
	return value.ObjectValue(cur.Arguments), nil
}

// atomEllipsis: "..." is only meaningful as the trailing marker in a
// func parameter list; evaluated anywhere else it is an error.
func (ev *Evaluator) atomEllipsis() (value.Value, error) {
	return value.Value{}, NewError(ErrInvalidKeywordAtom)
}
