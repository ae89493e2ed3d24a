package core

import (
	"fmt"
	"testing"
)

func TestMergeCatalog(t *testing.T) {
	tests := []struct {
		name     string
		registry []string
		local    []string
		want     []CatalogEntry
	}{
		{
			name: "empty inventories",
			want: []CatalogEntry{},
		},
		{
			name:     "registry only",
			registry: []string{"axemsolutions/gcc:12", "axemsolutions/cpputest:latest"},
			want: []CatalogEntry{
				{Image: "axemsolutions/gcc:12", Availability: RegistryOnly},
				{Image: "axemsolutions/cpputest:latest", Availability: RegistryOnly},
			},
		},
		{
			name:  "local only",
			local: []string{"make_gnu_arm:latest"},
			want: []CatalogEntry{
				{Image: "make_gnu_arm:latest", Availability: LocalOnly},
			},
		},
		{
			name:     "overlap keeps registry order then local order",
			registry: []string{"a:1", "b:1", "c:1"},
			local:    []string{"d:1", "b:1", "e:1"},
			want: []CatalogEntry{
				{Image: "a:1", Availability: RegistryOnly},
				{Image: "b:1", Availability: LocalAndRegistry},
				{Image: "c:1", Availability: RegistryOnly},
				{Image: "d:1", Availability: LocalOnly},
				{Image: "e:1", Availability: LocalOnly},
			},
		},
		{
			name:     "exact string equality decides membership",
			registry: []string{"docker.io/gcc:12"},
			local:    []string{"gcc:12"},
			want: []CatalogEntry{
				{Image: "docker.io/gcc:12", Availability: RegistryOnly},
				{Image: "gcc:12", Availability: LocalOnly},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeCatalog(tt.registry, tt.local)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMergeCatalog_UnionProperty(t *testing.T) {
	// Sweep registry/local overlaps of a fixed universe.
	universe := []string{"a:1", "b:1", "c:1", "d:1"}
	for mask := 0; mask < 1<<(2*len(universe)); mask++ {
		var registry, local []string
		for i, img := range universe {
			if mask&(1<<i) != 0 {
				registry = append(registry, img)
			}
			if mask&(1<<(i+len(universe))) != 0 {
				local = append(local, img)
			}
		}

		t.Run(fmt.Sprintf("mask=%d", mask), func(t *testing.T) {
			got := MergeCatalog(registry, local)

			union := make(map[string]bool)
			for _, img := range append(append([]string{}, registry...), local...) {
				union[img] = true
			}
			if len(got) != len(union) {
				t.Fatalf("len = %d, want |R ∪ L| = %d", len(got), len(union))
			}

			for _, e := range got {
				inR, inL := contains(registry, e.Image), contains(local, e.Image)
				var want Availability
				switch {
				case inR && inL:
					want = LocalAndRegistry
				case inR:
					want = RegistryOnly
				default:
					want = LocalOnly
				}
				if e.Availability != want {
					t.Errorf("%s tagged %v, want %v", e.Image, e.Availability, want)
				}
			}
		})
	}
}

func TestCatalogIndex(t *testing.T) {
	entries := MergeCatalog([]string{"a:1", "b:1"}, []string{"c:1"})

	if got := CatalogIndex(entries, "c:1"); got != 2 {
		t.Errorf("CatalogIndex(c:1) = %d, want 2", got)
	}
	if got := CatalogIndex(entries, "missing:1"); got != -1 {
		t.Errorf("CatalogIndex(missing:1) = %d, want -1", got)
	}
}

func TestAvailabilityString(t *testing.T) {
	tests := map[Availability]string{
		LocalOnly:           "local",
		RegistryOnly:        "registry",
		LocalAndRegistry:    "local and registry",
		AvailabilityNone:    "not available",
		AvailabilityUnknown: "unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", a, got, want)
		}
	}
}
