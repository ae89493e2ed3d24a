package core

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// fakeImages implements RegistrySource, LocalImageSource and ImagePuller.
type fakeImages struct {
	registry    []string
	local       []string
	registryErr error
	localErr    error
	pullErr     map[string]error
	pulled      []string
}

func (f *fakeImages) ListRegistry(context.Context) ([]string, error) {
	return f.registry, f.registryErr
}

func (f *fakeImages) ListLocal(context.Context) ([]string, error) {
	return f.local, f.localErr
}

func (f *fakeImages) Pull(_ context.Context, image string) error {
	if err := f.pullErr[image]; err != nil {
		return err
	}
	f.pulled = append(f.pulled, image)
	f.local = append(f.local, image)
	return nil
}

func newTestImages(f *fakeImages) *ToolImages {
	ti := NewToolImages(f, f, f, log.New(io.Discard))
	ti.Refresh(context.Background())
	return ti
}

func TestToolImages_Refresh(t *testing.T) {
	f := &fakeImages{
		registry: []string{"axemsolutions/gcc:12"},
		local:    []string{"make_gnu_arm:latest"},
	}
	ti := newTestImages(f)

	catalog := ti.Catalog()
	if len(catalog) != 2 {
		t.Fatalf("len(Catalog()) = %d, want 2", len(catalog))
	}
	if catalog[1].Image != "make_gnu_arm:latest" || catalog[1].Availability != LocalOnly {
		t.Errorf("catalog[1] = %+v, want local make_gnu_arm", catalog[1])
	}
}

func TestToolImages_RefreshSourceErrors(t *testing.T) {
	f := &fakeImages{
		registry: []string{"axemsolutions/gcc:12"},
		localErr: errors.New("docker: command not found"),
	}
	ti := newTestImages(f)

	if len(ti.Local) != 0 {
		t.Errorf("Local = %v, want empty on error", ti.Local)
	}
	if len(ti.Registry) != 1 {
		t.Errorf("Registry = %v, want the registry images", ti.Registry)
	}
}

func TestToolImages_CheckAvailability(t *testing.T) {
	ti := newTestImages(&fakeImages{
		registry: []string{"axemsolutions/cpputest:latest", "axemsolutions/gcc:12"},
		local:    []string{"axemsolutions/jlink:latest", "axemsolutions/cpputest:latest"},
	})
	env := &DevEnv{Name: "demo", Tools: []Tool{
		{Type: ToolTypeBuildSystem, ImageName: "axemsolutions/bazel", ImageVersion: "latest"},
		{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"},
		{Type: ToolTypeDebugger, ImageName: "axemsolutions/jlink", ImageVersion: "latest"},
		{Type: ToolTypeTestFramework, ImageName: "axemsolutions/cpputest", ImageVersion: "latest"},
	}}

	ti.CheckAvailability(env)

	want := []Availability{AvailabilityNone, RegistryOnly, LocalOnly, LocalAndRegistry}
	for i, w := range want {
		if got := env.Tools[i].Availability; got != w {
			t.Errorf("Tools[%d] (%s) availability = %v, want %v", i, env.Tools[i].Type, got, w)
		}
	}
	if env.Installed() {
		t.Error("Installed() = true, want false")
	}
}

func TestToolImages_Pull(t *testing.T) {
	f := &fakeImages{
		registry: []string{"axemsolutions/gcc:12", "axemsolutions/stlink_org:latest"},
		local:    []string{"axemsolutions/stlink_org:latest"},
	}
	ti := newTestImages(f)
	tools := []Tool{
		{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"},
		{Type: ToolTypeDebugger, ImageName: "axemsolutions/stlink_org", ImageVersion: "latest"},
		{Type: ToolTypeDeployer, ImageName: "axemsolutions/stlink_org", ImageVersion: "latest"},
		{Type: ToolTypeBuildSystem, ImageName: "nowhere", ImageVersion: "1"},
	}
	env := &DevEnv{Name: "demo", Tools: tools}
	ti.CheckAvailability(env)

	if err := ti.Pull(context.Background(), env.Tools); err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if len(f.pulled) != 1 || f.pulled[0] != "axemsolutions/gcc:12" {
		t.Errorf("pulled = %v, want only the registry-only gcc image", f.pulled)
	}

	ti.CheckAvailability(env)
	if env.Tools[0].Availability != LocalAndRegistry {
		t.Errorf("after pull gcc availability = %v, want local and registry", env.Tools[0].Availability)
	}
}

func TestToolImages_PullError(t *testing.T) {
	boom := errors.New("manifest unknown")
	f := &fakeImages{
		registry: []string{"axemsolutions/gcc:12"},
		pullErr:  map[string]error{"axemsolutions/gcc:12": boom},
	}
	ti := newTestImages(f)
	env := &DevEnv{Tools: []Tool{{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"}}}
	ti.CheckAvailability(env)

	err := ti.Pull(context.Background(), env.Tools)
	if !errors.Is(err, boom) {
		t.Errorf("Pull() error = %v, want wrapping %v", err, boom)
	}
}

type recordingObserver struct {
	total    int
	pulled   []string
	failed   []string
	finished bool
}

func (r *recordingObserver) PullStarted(total int) { r.total = total }

func (r *recordingObserver) ImagePulled(image string, err error) {
	if err != nil {
		r.failed = append(r.failed, image)
		return
	}
	r.pulled = append(r.pulled, image)
}

func (r *recordingObserver) PullFinished() { r.finished = true }

func TestToolImages_PullObserver(t *testing.T) {
	f := &fakeImages{
		registry: []string{"axemsolutions/gcc:12", "axemsolutions/jlink:latest"},
		pullErr:  map[string]error{"axemsolutions/jlink:latest": errors.New("denied")},
	}
	ti := newTestImages(f)
	obs := &recordingObserver{}
	ti.Observer = obs

	env := &DevEnv{Tools: []Tool{
		{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"},
		{Type: ToolTypeDebugger, ImageName: "axemsolutions/jlink", ImageVersion: "latest"},
	}}
	ti.CheckAvailability(env)

	if err := ti.Pull(context.Background(), env.Tools); err == nil {
		t.Fatal("Pull() error = nil, want jlink failure")
	}
	if obs.total != 2 {
		t.Errorf("total = %d, want 2", obs.total)
	}
	if len(obs.pulled) != 1 || obs.pulled[0] != "axemsolutions/gcc:12" {
		t.Errorf("pulled = %v, want [axemsolutions/gcc:12]", obs.pulled)
	}
	if len(obs.failed) != 1 || obs.failed[0] != "axemsolutions/jlink:latest" {
		t.Errorf("failed = %v, want [axemsolutions/jlink:latest]", obs.failed)
	}
	if !obs.finished {
		t.Error("PullFinished was not called")
	}
}

func TestToolImages_PullNothingSkipsObserver(t *testing.T) {
	f := &fakeImages{local: []string{"axemsolutions/gcc:12"}}
	ti := newTestImages(f)
	obs := &recordingObserver{}
	ti.Observer = obs

	env := &DevEnv{Tools: []Tool{{Type: ToolTypeToolchain, ImageName: "axemsolutions/gcc", ImageVersion: "12"}}}
	ti.CheckAvailability(env)
	if err := ti.Pull(context.Background(), env.Tools); err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if obs.finished || obs.total != 0 {
		t.Errorf("observer = %+v, want untouched", obs)
	}
}
