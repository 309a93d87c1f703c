package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"
)

type plainTarget struct{ v int }

type ownedTarget struct {
	v    int
	loop *Loop
}

func (o *ownedTarget) DispatchLoop() *Loop { return o.loop }

type intSetter struct{ calls int }

func (s *intSetter) Set(target any, v any) error {
	s.calls++
	switch t := target.(type) {
	case *plainTarget:
		t.v = v.(int)
	case *ownedTarget:
		t.v = v.(int)
	}
	return nil
}

func TestIsForeign(t *testing.T) {
	if IsForeign(&plainTarget{}) {
		t.Fatal("plain target must not be foreign")
	}
	if IsForeign(&ownedTarget{}) {
		t.Fatal("nil loop must not be foreign")
	}
	if !IsForeign(&ownedTarget{loop: NewLoop(0)}) {
		t.Fatal("owned target must be foreign")
	}
}

func TestApply_DirectWrite(t *testing.T) {
	tgt := &plainTarget{}
	set := &intSetter{}
	if err := Apply(tgt, set, 42); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if tgt.v != 42 || set.calls != 1 {
		t.Fatalf("direct write did not happen in place: v=%d calls=%d", tgt.v, set.calls)
	}
}

func TestApply_ForeignWriteIsMarshaled(t *testing.T) {
	loop := NewLoop(8)
	tgt := &ownedTarget{loop: loop}
	set := &intSetter{}

	if err := Apply(tgt, set, 7); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// The loop has not run yet: the write must not have happened in place.
	if set.calls != 0 || tgt.v != 0 {
		t.Fatalf("foreign write applied synchronously: v=%d calls=%d", tgt.v, set.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	waitFor(t, func() bool { return loop.Executed() == 1 })
	cancel()
	<-loop.Stopped()

	if tgt.v != 7 || set.calls != 1 {
		t.Fatalf("marshaled write did not land: v=%d calls=%d", tgt.v, set.calls)
	}
}

func TestLoop_RunsInOrder(t *testing.T) {
	loop := NewLoop(16)
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if err := loop.Post(func() { got = append(got, i) }); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	waitFor(t, func() bool { return loop.Executed() == 5 })
	cancel()
	<-loop.Stopped()

	for i, v := range got {
		if v != i {
			t.Fatalf("out of order execution: %v", got)
		}
	}
}

func TestLoop_PostAfterClose(t *testing.T) {
	loop := NewLoop(1)
	loop.Close()
	if err := loop.Post(func() {}); !errors.Is(err, ErrLoopClosed) {
		t.Fatalf("want ErrLoopClosed, got %v", err)
	}
}

func TestLoop_FullInbox(t *testing.T) {
	loop := NewLoop(1)
	if err := loop.Post(func() {}); err != nil {
		t.Fatalf("first post: %v", err)
	}
	if err := loop.Post(func() {}); err == nil {
		t.Fatal("expected error posting to a full inbox")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
