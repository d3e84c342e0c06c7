package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// kwFunc handles both forms: (func (params) body) and
// (func name (params) body).
func (ev *Evaluator) kwFunc(expr *ast.Expr) (value.Value, error) {
	switch len(expr.List) {
	case 3:
		return ev.makeFunc(expr.List[1], expr.List[2], expr)
	case 4:
		nameExpr := expr.List[1]
		if nameExpr.Kind != ast.Atom {
			return value.Value{}, NewError(ErrInvalidKeywordList)
		}
		return ev.makeNamedFunc(nameExpr.Text, expr.List[2], expr.List[3], expr)
	default:
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
}

func parseParams(paramsExpr *ast.Expr) ([]*value.Object, bool, error) {
	if paramsExpr.Kind != ast.List {
		return nil, false, NewError(ErrInvalidKeywordList)
	}
	var params []*value.Object
	variadic := false
	for i, p := range paramsExpr.List {
		if p.Kind != ast.Atom {
			return nil, false, NewError(ErrInvalidKeywordList)
		}
		if p.Text == "..." {
			if i != len(paramsExpr.List)-1 {
				return nil, false, NewError(ErrInvalidKeywordList)
			}
			variadic = true
			continue
		}
		if IsKeyword(p.Text) {
			return nil, false, NewError(ErrInvalidKeywordAtom)
		}
		params = append(params, value.Intern(p.Text))
	}
	return params, variadic, nil
}

func (ev *Evaluator) makeFunc(paramsExpr, bodyExpr *ast.Expr, whole *ast.Expr) (value.Value, error) {
	params, variadic, err := parseParams(paramsExpr)
	if err != nil {
		return value.Value{}, err
	}
	root := whole.Root
	if root == nil {
		root = whole
	}
	fnObj := value.NewFunctionObject(ev.Env.ProtoFunction, params, variadic, bodyExpr, root)
	return value.ObjectValue(fnObj), nil
}

func (ev *Evaluator) makeNamedFunc(name string, paramsExpr, bodyExpr *ast.Expr, whole *ast.Expr) (value.Value, error) {
	v, err := ev.makeFunc(paramsExpr, bodyExpr, whole)
	if err != nil {
		return value.Value{}, err
	}
	fnObj := v.Obj
	nameKey := value.Intern(name)
	fnObj.Name = nameKey

	proto := value.NewPlainObject(ev.Env.ProtoObject)
	proto.Name = nameKey
	fnObj.Props.Set(ev.Env.KeyPrototype, value.ObjectValue(proto))

	ev.bindName(nameKey, v)
	return v, nil
}

func (ev *Evaluator) bindName(key *value.Object, v value.Value) {
	if cur := ev.Env.CurrentFrame(); cur != nil {
		cur.Blocks[0].Set(key, v)
		return
	}
	ev.Env.Global.Props.Set(key, v)
}

// kwNew evaluates the constructor, then the argument list (left to
// right), allocates a fresh plain object using the constructor's own
// "prototype" property (falling back to the root Object prototype),
// and calls the constructor against it for side effects.
func (ev *Evaluator) kwNew(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) < 2 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	ctorVal, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	if ctorVal.Kind != value.KindObject {
		return value.Value{}, NewError(ErrNotObject)
	}
	if ctorVal.Obj == nil || ctorVal.Obj.Tag != value.TagFunction {
		return value.Value{}, NewError(ErrNotFunction)
	}

	args := make([]value.Value, 0, len(expr.List)-2)
	for _, a := range expr.List[2:] {
		v, err := ev.Eval(a)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}

	proto := ev.Env.ProtoObject
	if _, v, found := value.FindMember(ctorVal.Obj, ev.Env.KeyPrototype); found {
		if v.Kind != value.KindObject {
			return value.Value{}, NewError(ErrNotObject)
		}
		if v.Obj != nil {
			proto = v.Obj
		}
	}

	obj := value.NewPlainObject(proto)
	if _, err := ev.invoke(ctorVal.Obj, value.ObjectValue(obj), args); err != nil {
		return value.Value{}, err
	}
	return value.ObjectValue(obj), nil
}

func (ev *Evaluator) kwArray(expr *ast.Expr) (value.Value, error) {
	items := make([]value.Value, 0, len(expr.List)-1)
	for _, e := range expr.List[1:] {
		v, err := ev.Eval(e)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
	return value.ObjectValue(value.NewArrayObject(ev.Env.ProtoArray, items)), nil
}

// kwGetf handles (getf obj name) and the 2-arg (getf name) form that
// reads off `this`.
func (ev *Evaluator) kwGetf(expr *ast.Expr) (value.Value, error) {
	objVal, nameExpr, err := ev.resolveMemberTarget(expr, 3, 2)
	if err != nil {
		return value.Value{}, err
	}
	if nameExpr.Kind != ast.Atom {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	if objVal.Obj == nil {
		return value.Value{}, NewError(ErrNullReference)
	}
	key := value.Intern(nameExpr.Text)
	_, v, found := value.FindMember(objVal.Obj, key)
	if !found {
		return value.Undefined(), nil
	}
	return v, nil
}

// kwSetf handles (setf obj name val) and (setf name val) off `this`.
func (ev *Evaluator) kwSetf(expr *ast.Expr) (value.Value, error) {
	var objVal value.Value
	var nameExpr, valExpr *ast.Expr

	switch len(expr.List) {
	case 4:
		v, err := ev.Eval(expr.List[1])
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind != value.KindObject {
			return value.Value{}, NewError(ErrNotObject)
		}
		objVal, nameExpr, valExpr = v, expr.List[2], expr.List[3]
	case 3:
		if ev.Env.This.Kind != value.KindObject {
			return value.Value{}, NewError(ErrNotObject)
		}
		objVal, nameExpr, valExpr = ev.Env.This, expr.List[1], expr.List[2]
	default:
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}

	if nameExpr.Kind != ast.Atom {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	if objVal.Obj == nil {
		return value.Value{}, NewError(ErrNullReference)
	}

	val, err := ev.Eval(valExpr)
	if err != nil {
		return value.Value{}, err
	}

	key := value.Intern(nameExpr.Text)
	if owner, _, found := value.FindMember(objVal.Obj, key); found {
		owner.Props.Set(key, val)
	} else {
		objVal.Obj.Props.Set(key, val)
	}
	return val, nil
}

// resolveMemberTarget shares the getf-shaped "(kw obj name)" / "(kw
// name)" arity switch used by kwGetf.
func (ev *Evaluator) resolveMemberTarget(expr *ast.Expr, longArity, shortArity int) (value.Value, *ast.Expr, error) {
	switch len(expr.List) {
	case longArity:
		v, err := ev.Eval(expr.List[1])
		if err != nil {
			return value.Value{}, nil, err
		}
		if v.Kind != value.KindObject {
			return value.Value{}, nil, NewError(ErrNotObject)
		}
		return v, expr.List[2], nil
	case shortArity:
		if ev.Env.This.Kind != value.KindObject {
			return value.Value{}, nil, NewError(ErrNotObject)
		}
		return ev.Env.This, expr.List[1], nil
	default:
		return value.Value{}, nil, NewError(ErrInvalidKeywordList)
	}
}

func (ev *Evaluator) kwGetl(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 2 || expr.List[1].Kind != ast.Atom {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	key := value.Intern(expr.List[1].Text)
	v, ok := ev.Env.LookupLocal(key)
	if !ok {
		return value.Undefined(), nil
	}
	return v, nil
}

func (ev *Evaluator) kwSetl(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 3 || expr.List[1].Kind != ast.Atom {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	val, err := ev.Eval(expr.List[2])
	if err != nil {
		return value.Value{}, err
	}
	ev.Env.SetLocal(value.Intern(expr.List[1].Text), val)
	return val, nil
}

func requireStringKey(v value.Value) (*value.Object, error) {
	if v.Kind != value.KindObject || v.Obj == nil || v.Obj.Tag != value.TagString {
		return nil, NewError(ErrNotString)
	}
	return value.Intern(v.Obj.StringContent()), nil
}

// kwGeti is (geti obj keyExpr): the dynamic-key counterpart of getf,
// exact arity 3.
func (ev *Evaluator) kwGeti(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 3 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	objVal, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	if objVal.Kind != value.KindObject {
		return value.Value{}, NewError(ErrNotObject)
	}
	if objVal.Obj == nil {
		return value.Value{}, NewError(ErrNullReference)
	}
	keyVal, err := ev.Eval(expr.List[2])
	if err != nil {
		return value.Value{}, err
	}
	key, err := requireStringKey(keyVal)
	if err != nil {
		return value.Value{}, err
	}
	_, v, found := value.FindMember(objVal.Obj, key)
	if !found {
		return value.Undefined(), nil
	}
	return v, nil
}

// kwSeti is (seti obj keyExpr val), exact arity 4.
func (ev *Evaluator) kwSeti(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 4 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	objVal, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	if objVal.Kind != value.KindObject {
		return value.Value{}, NewError(ErrNotObject)
	}
	if objVal.Obj == nil {
		return value.Value{}, NewError(ErrNullReference)
	}
	keyVal, err := ev.Eval(expr.List[2])
	if err != nil {
		return value.Value{}, err
	}
	key, err := requireStringKey(keyVal)
	if err != nil {
		return value.Value{}, err
	}
	val, err := ev.Eval(expr.List[3])
	if err != nil {
		return value.Value{}, err
	}
	if owner, _, found := value.FindMember(objVal.Obj, key); found {
		owner.Props.Set(key, val)
	} else {
		objVal.Obj.Props.Set(key, val)
	}
	return val, nil
}
