package builtin

import (
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/value"
)

// installReplConfig binds replConfig, a plain object with one property
// scripts can flip at runtime: dumpExpr, default false. The REPL and
// run command check it before printing a form's parsed shape; their
// --dump-expr flag only sets it to true at startup.
func installReplConfig(e *env.Env, global *value.Object) {
	cfg := value.NewPlainObject(e.ProtoObject)
	cfg.Props.Set(value.Intern("dumpExpr"), value.Boolean(false))
	global.Props.Set(value.Intern("replConfig"), value.ObjectValue(cfg))
}

// ReplConfigDumpExpr reads the current value of replConfig.dumpExpr off
// global, defaulting to false if the script has removed or shadowed it.
func ReplConfigDumpExpr(global *value.Object) bool {
	_, v, ok := value.FindMember(global, value.Intern("replConfig"))
	if !ok || v.Kind != value.KindObject || v.Obj == nil {
		return false
	}
	_, dv, ok := value.FindMember(v.Obj, value.Intern("dumpExpr"))
	if !ok {
		return false
	}
	return dv.Kind == value.KindBoolean && dv.Bool
}
