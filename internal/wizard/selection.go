package wizard

// Unassigned marks a tool type the user backed out of without picking an
// image.
const Unassigned = "<not selected>"

// Selection maps tool types to the chosen image identifier or Unassigned.
type Selection map[string]string

// Clone returns a copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Assigned returns the image chosen for toolType and whether one is set.
func (s Selection) Assigned(toolType string) (string, bool) {
	img, ok := s[toolType]
	if !ok || img == Unassigned {
		return "", false
	}
	return img, true
}

// prune drops every entry whose tool type is not in keep.
func (s Selection) prune(keep []string) {
	wanted := make(map[string]bool, len(keep))
	for _, t := range keep {
		wanted[t] = true
	}
	for t := range s {
		if !wanted[t] {
			delete(s, t)
		}
	}
}
