package session

import (
	"errors"
	"testing"

	"github.com/tinytelemetry/slides/internal/model"
)

type fakeSession struct {
	active bool
	info   model.DocumentInfo
}

func (f *fakeSession) Active() bool             { return f.active }
func (f *fakeSession) Info() model.DocumentInfo { return f.info }

func TestGate_FollowsSession(t *testing.T) {
	t.Parallel()

	s := &fakeSession{info: model.DocumentInfo{SessionID: "abc", FileName: "report.md"}}
	g := NewGate(s)

	if g.IsReady() {
		t.Fatal("gate ready before document loaded")
	}
	if _, ok := g.Info(); ok {
		t.Fatal("Info returned metadata while not ready")
	}

	s.active = true
	if !g.IsReady() {
		t.Fatal("gate not ready after document loaded")
	}
	info, ok := g.Info()
	if !ok || info.FileName != "report.md" {
		t.Fatalf("Info = %+v, %v", info, ok)
	}
}

func TestGate_CheckReturnsPrecondition(t *testing.T) {
	t.Parallel()

	for name, g := range map[string]*Gate{
		"nil gate":    nil,
		"nil session": NewGate(nil),
		"inactive":    NewGate(&fakeSession{}),
	} {
		err := g.Check()
		if err == nil {
			t.Fatalf("%s: Check() = nil, want error", name)
		}
		if !model.IsType(err, model.ErrorTypePrecondition) {
			t.Errorf("%s: error type = %v, want precondition", name, err)
		}
		if !errors.Is(err, model.ErrNoDocument) {
			t.Errorf("%s: errors.Is(ErrNoDocument) = false", name)
		}
	}
}
