// Package property resolves named properties on arbitrary targets into
// accessors. Resolution happens once, at binding time; the returned accessor
// is reused on every tick. A property is either an exported struct field or
// a Name()/SetName() method pair; callers that want to avoid reflection can
// supply a FuncAccessor instead.
package property

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoSuchProperty is returned when the named property does not exist
	// on the target's type.
	ErrNoSuchProperty = errors.New("property: no such property")

	// ErrNotAccessible is returned when the property exists but is not both
	// readable and writable (unexported field, value receiver target,
	// getter without setter, …).
	ErrNotAccessible = errors.New("property: not readable and writable")
)

// Accessor reads and writes one property on a target.
type Accessor interface {
	Name() string
	Get(target any) (any, error)
	Set(target any, v any) error
}

// Resolve finds the property called name on target. Method pairs take
// precedence over fields: a zero-argument method name() paired with a
// one-argument Setname() is used when both exist with matching types.
func Resolve(target any, name string) (Accessor, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: %q on nil target", ErrNoSuchProperty, name)
	}
	rv := reflect.ValueOf(target)

	if acc, ok, err := resolveMethods(rv, target, name); ok {
		return acc, err
	}
	return resolveField(rv, target, name)
}

func resolveMethods(rv reflect.Value, target any, name string) (Accessor, bool, error) {
	getter := rv.MethodByName(name)
	setter := rv.MethodByName("Set" + name)
	if !getter.IsValid() && !setter.IsValid() {
		return nil, false, nil
	}
	if !getter.IsValid() || !setter.IsValid() {
		return nil, true, fmt.Errorf("%w: %q on %T needs both %s() and Set%s()",
			ErrNotAccessible, name, target, name, name)
	}
	gt, st := getter.Type(), setter.Type()
	if gt.NumIn() != 0 || gt.NumOut() != 1 || st.NumIn() != 1 || st.NumOut() != 0 ||
		gt.Out(0) != st.In(0) {
		return nil, true, fmt.Errorf("%w: %q on %T has mismatched accessor signatures",
			ErrNotAccessible, name, target)
	}
	return &methodAccessor{name: name, setterName: "Set" + name}, true, nil
}

func resolveField(rv reflect.Value, target any, name string) (Accessor, error) {
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %q on %T (want pointer to struct)", ErrNoSuchProperty, name, target)
	}
	ft, ok := rv.Elem().Type().FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %T", ErrNoSuchProperty, name, target)
	}
	if !ft.IsExported() {
		return nil, fmt.Errorf("%w: %q on %T is unexported", ErrNotAccessible, name, target)
	}
	return &fieldAccessor{name: name, index: ft.Index}, nil
}

type fieldAccessor struct {
	name  string
	index []int
}

func (a *fieldAccessor) Name() string { return a.name }

func (a *fieldAccessor) Get(target any) (any, error) {
	f, err := a.field(target)
	if err != nil {
		return nil, err
	}
	return f.Interface(), nil
}

func (a *fieldAccessor) Set(target any, v any) error {
	f, err := a.field(target)
	if err != nil {
		return err
	}
	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("property: cannot assign %T to %q (%s)", v, a.name, f.Type())
	}
	f.Set(val)
	return nil
}

func (a *fieldAccessor) field(target any) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %q on %T", ErrNotAccessible, a.name, target)
	}
	return rv.Elem().FieldByIndex(a.index), nil
}

type methodAccessor struct {
	name       string
	setterName string
}

func (a *methodAccessor) Name() string { return a.name }

func (a *methodAccessor) Get(target any) (any, error) {
	out := reflect.ValueOf(target).MethodByName(a.name).Call(nil)
	return out[0].Interface(), nil
}

func (a *methodAccessor) Set(target any, v any) error {
	reflect.ValueOf(target).MethodByName(a.setterName).Call([]reflect.Value{reflect.ValueOf(v)})
	return nil
}

// FuncAccessor adapts explicit getter/setter closures to the Accessor
// contract, bypassing reflection entirely.
type FuncAccessor struct {
	Prop    string
	GetFunc func(target any) (any, error)
	SetFunc func(target any, v any) error
}

func (a FuncAccessor) Name() string { return a.Prop }

func (a FuncAccessor) Get(target any) (any, error) { return a.GetFunc(target) }

func (a FuncAccessor) Set(target any, v any) error { return a.SetFunc(target, v) }
