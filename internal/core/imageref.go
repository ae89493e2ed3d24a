package core

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
)

// ImageRef is a parsed "name:tag" image identifier.
type ImageRef struct {
	Name string // Repository name, registry prefix included
	Tag  string
}

// ParseImageRef splits an identifier such as "axemsolutions/gcc:12" into
// name and tag. Registry hosts with a port ("localhost:5000/gcc:12") keep
// their port in the name. The identifier must be a valid image reference
// with a tag; digest references are rejected.
func ParseImageRef(image string) (ImageRef, error) {
	ref, err := reference.Parse(image)
	if err != nil {
		return ImageRef{}, fmt.Errorf("malformed image %q: %w", image, err)
	}
	if _, ok := ref.(reference.Digested); ok {
		return ImageRef{}, fmt.Errorf("image %q is pinned by digest", image)
	}
	named, ok := ref.(reference.Named)
	if !ok {
		return ImageRef{}, fmt.Errorf("image %q has no name", image)
	}
	tagged, ok := ref.(reference.Tagged)
	if !ok {
		return ImageRef{}, fmt.Errorf("image %q has no tag", image)
	}
	return ImageRef{Name: named.Name(), Tag: tagged.Tag()}, nil
}

// isUntaggedName reports whether image is a valid repository name that
// only lacks a tag.
func isUntaggedName(image string) bool {
	ref, err := reference.Parse(image)
	if err != nil {
		return false
	}
	_, named := ref.(reference.Named)
	_, tagged := ref.(reference.Tagged)
	_, digested := ref.(reference.Digested)
	return named && !tagged && !digested
}

// MustParseImageRef is like ParseImageRef but panics on malformed input.
// Only use it for identifiers taken from a merged catalog.
func MustParseImageRef(image string) ImageRef {
	ref, err := ParseImageRef(image)
	if err != nil {
		panic(err)
	}
	return ref
}

// Registry returns the registry/namespace prefix of the name, if any.
func (r ImageRef) Registry() string {
	if i := strings.LastIndex(r.Name, "/"); i >= 0 {
		return r.Name[:i]
	}
	return ""
}

// Repository returns the name without its registry prefix.
func (r ImageRef) Repository() string {
	if i := strings.LastIndex(r.Name, "/"); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

func (r ImageRef) String() string {
	return r.Name + ":" + r.Tag
}
