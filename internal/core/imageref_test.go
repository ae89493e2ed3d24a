package core

import (
	"strings"
	"testing"
)

func TestParseImageRef(t *testing.T) {
	tests := []struct {
		image    string
		name     string
		tag      string
		registry string
		repo     string
	}{
		{"make_gnu_arm:latest", "make_gnu_arm", "latest", "", "make_gnu_arm"},
		{"axemsolutions/gcc:12", "axemsolutions/gcc", "12", "axemsolutions", "gcc"},
		{"localhost:5000/gcc:12", "localhost:5000/gcc", "12", "localhost:5000", "gcc"},
		{"ghcr.io/org/team/gcc:12.2", "ghcr.io/org/team/gcc", "12.2", "ghcr.io/org/team", "gcc"},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			ref, err := ParseImageRef(tt.image)
			if err != nil {
				t.Fatalf("ParseImageRef() error = %v", err)
			}
			if ref.Name != tt.name {
				t.Errorf("Name = %q, want %q", ref.Name, tt.name)
			}
			if ref.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", ref.Tag, tt.tag)
			}
			if got := ref.Registry(); got != tt.registry {
				t.Errorf("Registry() = %q, want %q", got, tt.registry)
			}
			if got := ref.Repository(); got != tt.repo {
				t.Errorf("Repository() = %q, want %q", got, tt.repo)
			}
			if got := ref.String(); got != tt.image {
				t.Errorf("String() = %q, want %q", got, tt.image)
			}
		})
	}
}

func TestParseImageRef_Malformed(t *testing.T) {
	for _, image := range []string{
		"",
		"gcc",
		"axemsolutions/gcc",
		"localhost:5000/gcc",
		"gcc:",
		":12",
		"axemsolutions/:12",
		"Axem Solutions/g cc:1 2",
		"Axemsolutions/gcc:12",
		"gcc:12@sha256:abc",
		"axemsolutions/gcc:12@sha256:" + strings.Repeat("a", 64),
		"axemsolutions/gcc@sha256:" + strings.Repeat("a", 64),
		"gcc:-bad",
	} {
		if _, err := ParseImageRef(image); err == nil {
			t.Errorf("ParseImageRef(%q) expected error", image)
		}
	}
}

func TestMustParseImageRef_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseImageRef should panic on a malformed identifier")
		}
	}()
	MustParseImageRef("no-tag")
}
