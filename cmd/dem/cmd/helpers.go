package cmd

import (
	"context"
	"strings"

	"github.com/axemsolutions/dem/internal/core"
)

// availabilityMessage describes where a tool image can be found.
func availabilityMessage(a core.Availability) string {
	switch a {
	case core.LocalOnly:
		return "Image is available locally."
	case core.RegistryOnly:
		return "Image is available in the registry."
	case core.LocalAndRegistry:
		return "Image is available locally and in the registry."
	default:
		return "Error: Required image is not available!"
	}
}

// lookupDevEnv refreshes the image inventory and returns the named
// environment with availability filled in.
func lookupDevEnv(ctx context.Context, d *deps, name string) (*core.DevEnv, error) {
	env, err := d.platform.DevEnv(name)
	if err != nil {
		return nil, err
	}
	d.platform.Images.Refresh(ctx)
	d.platform.Images.CheckAvailability(env)
	return env, nil
}

// joinStrings concatenates string slices with ", " separator.
func joinStrings(ss []string) string {
	return strings.Join(ss, ", ")
}
