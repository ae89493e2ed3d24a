package core

// MergeCatalog combines the registry and local image inventories into one
// list. Registry images come first in registry order, tagged
// LocalAndRegistry when the identical identifier is also local. Local
// images missing from the registry follow in local order as LocalOnly.
func MergeCatalog(registry, local []string) []CatalogEntry {
	inLocal := make(map[string]bool, len(local))
	for _, img := range local {
		inLocal[img] = true
	}
	inRegistry := make(map[string]bool, len(registry))
	for _, img := range registry {
		inRegistry[img] = true
	}

	entries := make([]CatalogEntry, 0, len(registry)+len(local))
	for _, img := range registry {
		a := RegistryOnly
		if inLocal[img] {
			a = LocalAndRegistry
		}
		entries = append(entries, CatalogEntry{Image: img, Availability: a})
	}
	for _, img := range local {
		if !inRegistry[img] {
			entries = append(entries, CatalogEntry{Image: img, Availability: LocalOnly})
		}
	}
	return entries
}

// CatalogIndex returns the position of image in entries, or -1.
func CatalogIndex(entries []CatalogEntry, image string) int {
	for i, e := range entries {
		if e.Image == image {
			return i
		}
	}
	return -1
}
