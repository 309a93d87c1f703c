package property

import (
	"errors"
	"testing"
)

type widget struct {
	Width   int
	Opacity float64
	hidden  int

	volume int
}

func (w *widget) Volume() int       { return w.volume }
func (w *widget) SetVolume(v int)   { w.volume = v }
func (w *widget) Muted() bool       { return w.volume == 0 }
func (w *widget) Peek() (int, bool) { return w.volume, true }

func TestResolve_Field(t *testing.T) {
	w := &widget{Width: 100}
	acc, err := Resolve(w, "Width")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if acc.Name() != "Width" {
		t.Fatalf("name: want Width, got %q", acc.Name())
	}
	v, err := acc.Get(w)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != 100 {
		t.Fatalf("get: want 100, got %v", v)
	}
	if err := acc.Set(w, 250); err != nil {
		t.Fatalf("set: %v", err)
	}
	if w.Width != 250 {
		t.Fatalf("set did not land: %d", w.Width)
	}
}

func TestResolve_MethodPair(t *testing.T) {
	w := &widget{volume: 3}
	acc, err := Resolve(w, "Volume")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	v, _ := acc.Get(w)
	if v != 3 {
		t.Fatalf("get: want 3, got %v", v)
	}
	if err := acc.Set(w, 11); err != nil {
		t.Fatalf("set: %v", err)
	}
	if w.volume != 11 {
		t.Fatalf("set did not land: %d", w.volume)
	}
}

func TestResolve_NoSuchProperty(t *testing.T) {
	_, err := Resolve(&widget{}, "Height")
	if !errors.Is(err, ErrNoSuchProperty) {
		t.Fatalf("want ErrNoSuchProperty, got %v", err)
	}
}

func TestResolve_Unexported(t *testing.T) {
	_, err := Resolve(&widget{}, "hidden")
	if !errors.Is(err, ErrNotAccessible) {
		t.Fatalf("want ErrNotAccessible, got %v", err)
	}
}

func TestResolve_GetterWithoutSetter(t *testing.T) {
	_, err := Resolve(&widget{}, "Muted")
	if !errors.Is(err, ErrNotAccessible) {
		t.Fatalf("want ErrNotAccessible, got %v", err)
	}
}

func TestResolve_BadGetterSignature(t *testing.T) {
	// Peek returns two values; even with a matching setter name it would not
	// qualify, and there is none, so it must fail accessibility.
	_, err := Resolve(&widget{}, "Peek")
	if !errors.Is(err, ErrNotAccessible) {
		t.Fatalf("want ErrNotAccessible, got %v", err)
	}
}

func TestResolve_NonStructTarget(t *testing.T) {
	x := 5
	if _, err := Resolve(&x, "Width"); !errors.Is(err, ErrNoSuchProperty) {
		t.Fatalf("want ErrNoSuchProperty, got %v", err)
	}
	if _, err := Resolve(nil, "Width"); !errors.Is(err, ErrNoSuchProperty) {
		t.Fatalf("want ErrNoSuchProperty for nil, got %v", err)
	}
}

func TestSet_WrongType(t *testing.T) {
	w := &widget{}
	acc, err := Resolve(w, "Width")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := acc.Set(w, "wide"); err == nil {
		t.Fatal("expected error assigning string to int field")
	}
}

func TestFuncAccessor(t *testing.T) {
	val := 1.0
	acc := FuncAccessor{
		Prop:    "Level",
		GetFunc: func(any) (any, error) { return val, nil },
		SetFunc: func(_ any, v any) error { val = v.(float64); return nil },
	}
	if got, _ := acc.Get(nil); got != 1.0 {
		t.Fatalf("get: want 1.0, got %v", got)
	}
	if err := acc.Set(nil, 0.25); err != nil {
		t.Fatalf("set: %v", err)
	}
	if val != 0.25 {
		t.Fatalf("set did not land: %v", val)
	}
}
