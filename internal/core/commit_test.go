package core

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestPlatform(t *testing.T, f *fakeImages) *Platform {
	t.Helper()
	store, err := OpenEnvStore(writeStore(t, demoStore))
	if err != nil {
		t.Fatal(err)
	}
	return &Platform{
		Store:  store,
		Images: newTestImages(f),
		Logger: log.New(io.Discard),
	}
}

func storeBytes(t *testing.T, p *Platform) []byte {
	t.Helper()
	data, err := os.ReadFile(p.Store.Path())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

var gccTools = []Tool{{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"}}

func TestCommit_Confirm(t *testing.T) {
	f := &fakeImages{registry: []string{"axemsolutions/gcc:12"}}
	p := newTestPlatform(t, f)
	demo := p.Store.FindByName("demo")

	got, err := p.Commit(context.Background(), CommitRequest{Env: demo, Tools: gccTools, Decision: DecisionConfirm})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if got != demo {
		t.Error("confirm should edit the environment in place")
	}
	if len(demo.Tools) != 1 || demo.Tools[0].Image() != "axemsolutions/gcc:12" {
		t.Errorf("demo.Tools = %+v, want gcc:12 only", demo.Tools)
	}
	if len(f.pulled) != 1 {
		t.Errorf("pulled = %v, want gcc pulled", f.pulled)
	}
	if demo.Tools[0].Availability != LocalAndRegistry {
		t.Errorf("availability = %v, want local and registry after pull", demo.Tools[0].Availability)
	}

	reloaded, err := OpenEnvStore(p.Store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if tools := reloaded.FindByName("demo").Tools; len(tools) != 1 || tools[0].Type != ToolTypeToolchain {
		t.Errorf("persisted demo tools = %+v", tools)
	}
}

func TestCommit_SaveAs(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{local: []string{"axemsolutions/gcc:12"}})
	demo := p.Store.FindByName("demo")

	got, err := p.Commit(context.Background(), CommitRequest{
		Env: demo, Tools: gccTools, Decision: DecisionSaveAs, NewName: " demo_gcc ",
	})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if got.Name != "demo_gcc" {
		t.Errorf("Name = %q, want %q", got.Name, "demo_gcc")
	}
	if len(demo.Tools) != 2 {
		t.Errorf("original demo should keep its tools, got %+v", demo.Tools)
	}

	reloaded, err := OpenEnvStore(p.Store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.List()) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(reloaded.List()))
	}
	if len(reloaded.FindByName("demo").Tools) != 2 {
		t.Error("persisted original demo changed")
	}
	if cp := reloaded.FindByName("demo_gcc"); cp == nil || len(cp.Tools) != 1 {
		t.Errorf("persisted copy = %+v", cp)
	}
}

func TestCommit_SaveAsCollision(t *testing.T) {
	f := &fakeImages{registry: []string{"axemsolutions/gcc:12"}}
	p := newTestPlatform(t, f)
	demo := p.Store.FindByName("demo")
	before := storeBytes(t, p)

	_, err := p.Commit(context.Background(), CommitRequest{
		Env: demo, Tools: gccTools, Decision: DecisionSaveAs, NewName: "nagy_cica_project",
	})
	if !errors.Is(err, ErrDevEnvExists) {
		t.Fatalf("Commit() error = %v, want ErrDevEnvExists", err)
	}

	if len(p.Store.List()) != 2 {
		t.Errorf("collection changed: %d environments", len(p.Store.List()))
	}
	if len(demo.Tools) != 2 || demo.Tools[0].Type != ToolTypeBuildSystem {
		t.Errorf("original demo changed: %+v", demo.Tools)
	}
	if string(storeBytes(t, p)) != string(before) {
		t.Error("store file was rewritten")
	}
	if len(f.pulled) != 0 {
		t.Errorf("pulled = %v, want nothing", f.pulled)
	}
}

func TestCommit_SaveAsEmptyName(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{})
	_, err := p.Commit(context.Background(), CommitRequest{
		Env: p.Store.FindByName("demo"), Tools: gccTools, Decision: DecisionSaveAs, NewName: "  ",
	})
	if err == nil {
		t.Fatal("expected error for empty name")
	}
	if len(p.Store.List()) != 2 {
		t.Error("collection changed")
	}
}

func TestCommit_Cancel(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{})
	demo := p.Store.FindByName("demo")
	before := storeBytes(t, p)

	_, err := p.Commit(context.Background(), CommitRequest{Env: demo, Tools: gccTools, Decision: DecisionCancel})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Commit() error = %v, want ErrAborted", err)
	}
	if len(demo.Tools) != 2 {
		t.Error("cancel changed the environment")
	}
	if string(storeBytes(t, p)) != string(before) {
		t.Error("cancel rewrote the store")
	}
}

func TestPlatform_DevEnv(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{})

	if _, err := p.DevEnv("demo"); err != nil {
		t.Errorf("DevEnv(demo) error = %v", err)
	}
	if _, err := p.DevEnv("not_existing_environment"); !errors.Is(err, ErrUnknownDevEnv) {
		t.Errorf("DevEnv(missing) error = %v, want ErrUnknownDevEnv", err)
	}
}

// blockPersist makes the next Persist fail at the temp-file write.
func blockPersist(t *testing.T, p *Platform) {
	t.Helper()
	if err := os.Mkdir(p.Store.Path()+".tmp", 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestCommit_ConfirmPersistFailureRestoresTools(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{registry: []string{"axemsolutions/gcc:12"}})
	demo := p.Store.FindByName("demo")
	before := demo.Clone()
	blockPersist(t, p)

	if _, err := p.Commit(context.Background(), CommitRequest{Env: demo, Tools: gccTools, Decision: DecisionConfirm}); err == nil {
		t.Fatal("Commit() error = nil, want persist failure")
	}
	if len(demo.Tools) != len(before.Tools) {
		t.Fatalf("demo.Tools = %+v, want restored %+v", demo.Tools, before.Tools)
	}
	for i := range before.Tools {
		if demo.Tools[i] != before.Tools[i] {
			t.Errorf("demo.Tools[%d] = %+v, want %+v", i, demo.Tools[i], before.Tools[i])
		}
	}
}

func TestCommit_SaveAsPersistFailureDropsCopy(t *testing.T) {
	p := newTestPlatform(t, &fakeImages{local: []string{"axemsolutions/gcc:12"}})
	demo := p.Store.FindByName("demo")
	count := len(p.Store.List())
	blockPersist(t, p)

	req := CommitRequest{Env: demo, Tools: gccTools, Decision: DecisionSaveAs, NewName: "copy"}
	if _, err := p.Commit(context.Background(), req); err == nil {
		t.Fatal("Commit() error = nil, want persist failure")
	}
	if p.Store.FindByName("copy") != nil {
		t.Error("copy should not stay in the store after a failed write")
	}
	if got := len(p.Store.List()); got != count {
		t.Errorf("len(List()) = %d, want %d", got, count)
	}
}
