package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// RegistrySource lists the tool images available in the registry.
type RegistrySource interface {
	ListRegistry(ctx context.Context) ([]string, error)
}

// RegistryCatalog is the registry image list kept at ~/.dem/registry.json.
//
//	{
//	  // images published by the organisation registry
//	  "images": ["axemsolutions/gcc:12", "axemsolutions/cpputest:latest"],
//	}
type RegistryCatalog struct {
	path string
}

// NewRegistryCatalog creates a RegistryCatalog reading from path.
func NewRegistryCatalog(path string) *RegistryCatalog {
	return &RegistryCatalog{path: path}
}

// ListRegistry returns the catalog's image identifiers in file order,
// dropping duplicates and unparsable entries. Untagged images mean
// ":latest". A missing catalog is an empty registry.
func (rc *RegistryCatalog) ListRegistry(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(rc.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading registry catalog: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing registry catalog %s: %w", rc.path, err)
	}
	if !gjson.ValidBytes(std) {
		return nil, fmt.Errorf("parsing registry catalog %s: invalid JSON", rc.path)
	}
	list := gjson.GetBytes(std, "images")
	if list.Exists() && !list.IsArray() {
		return nil, fmt.Errorf("parsing registry catalog %s: images must be an array", rc.path)
	}

	entries := list.Array()
	seen := make(map[string]bool, len(entries))
	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type != gjson.String {
			continue
		}
		img, ok := normalizeImage(e.Str)
		if !ok || seen[img] {
			continue
		}
		seen[img] = true
		images = append(images, img)
	}
	return images, nil
}

// normalizeImage completes an untagged identifier with ":latest" and
// rejects identifiers that are not valid tagged image references.
func normalizeImage(img string) (string, bool) {
	img = strings.TrimSpace(img)
	if img == "" {
		return "", false
	}
	if isUntaggedName(img) {
		img += ":latest"
	}
	if _, err := ParseImageRef(img); err != nil {
		return "", false
	}
	return img, true
}
