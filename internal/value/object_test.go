package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSameObjectForEqualContent(t *testing.T) {
	a := Intern("hello")
	b := Intern("hello")
	assert.Same(t, a, b)
}

func TestInternEmptyStringIsTheSentinel(t *testing.T) {
	assert.Same(t, EmptyString, Intern(""))
}

func TestFindMemberWalksPrototypeChain(t *testing.T) {
	root := NewPlainObject(nil)
	key := Intern("x")
	root.Props.Set(key, Number(1))

	child := NewPlainObject(root)

	owner, v, found := FindMember(child, key)
	assert.True(t, found)
	assert.Same(t, root, owner)
	assert.Equal(t, Number(1), v)
}

func TestFindMemberMissingKey(t *testing.T) {
	root := NewPlainObject(nil)
	_, _, found := FindMember(root, Intern("missing"))
	assert.False(t, found)
}

func TestEqualComparesObjectsByIdentity(t *testing.T) {
	a := NewPlainObject(nil)
	b := NewPlainObject(nil)
	assert.True(t, Equal(ObjectValue(a), ObjectValue(a)))
	assert.False(t, Equal(ObjectValue(a), ObjectValue(b)))
}

func TestEqualDoesNotCompareAcrossKinds(t *testing.T) {
	assert.False(t, Equal(Number(0), Boolean(false)))
	assert.False(t, Equal(Undefined(), Null()))
}

func TestNullIsAnObjectWithNoReferent(t *testing.T) {
	n := Null()
	assert.True(t, n.IsNull())
	assert.Equal(t, KindObject, n.Kind)
}

func TestIsFunction(t *testing.T) {
	fnObj := NewNativeFunctionObject(nil, func(this Value, args []Value) (Value, error) {
		return Undefined(), nil
	})
	assert.True(t, ObjectValue(fnObj).IsFunction())
	assert.False(t, ObjectValue(NewPlainObject(nil)).IsFunction())
	assert.False(t, Number(1).IsFunction())
}

func TestPropertyTableSetOverwritesInPlace(t *testing.T) {
	tbl := NewPropertyTable()
	k1, k2 := Intern("a"), Intern("b")
	tbl.Set(k1, Number(1))
	tbl.Set(k2, Number(2))
	tbl.Set(k1, Number(3))

	assert.Equal(t, []*Object{k1, k2}, tbl.Keys())
	v, ok := tbl.Get(k1)
	assert.True(t, ok)
	assert.Equal(t, Number(3), v)
}

func TestPropertyTableSetIfExists(t *testing.T) {
	tbl := NewPropertyTable()
	key := Intern("only-if-exists")
	assert.False(t, tbl.SetIfExists(key, Number(1)))
	tbl.Set(key, Number(1))
	assert.True(t, tbl.SetIfExists(key, Number(2)))
	v, _ := tbl.Get(key)
	assert.Equal(t, Number(2), v)
}
