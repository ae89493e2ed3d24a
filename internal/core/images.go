package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ToolImages is the inventory of tool images known to dem: the images
// published in the registry and the images present locally.
type ToolImages struct {
	Registry []string
	Local    []string

	// Observer, when set, is told about the images Pull retrieves.
	Observer PullObserver

	registry RegistrySource
	local    LocalImageSource
	puller   ImagePuller
	logger   *log.Logger
}

// PullObserver follows the progress of ToolImages.Pull.
type PullObserver interface {
	PullStarted(total int)
	ImagePulled(image string, err error)
	PullFinished()
}

// NewToolImages creates an inventory backed by the given sources. Call
// Refresh to populate it.
func NewToolImages(registry RegistrySource, local LocalImageSource, puller ImagePuller, logger *log.Logger) *ToolImages {
	return &ToolImages{
		registry: registry,
		local:    local,
		puller:   puller,
		logger:   logger,
	}
}

// Refresh reloads both inventories. A source that cannot be read is logged
// and treated as empty so read-only commands keep working without a
// container runtime.
func (ti *ToolImages) Refresh(ctx context.Context) {
	ti.Registry = ti.list(ctx, "registry", ti.registry.ListRegistry)
	ti.Local = ti.list(ctx, "local", ti.local.ListLocal)
}

// RefreshLocal reloads only the local inventory.
func (ti *ToolImages) RefreshLocal(ctx context.Context) {
	ti.Local = ti.list(ctx, "local", ti.local.ListLocal)
}

func (ti *ToolImages) list(ctx context.Context, kind string, fn func(context.Context) ([]string, error)) []string {
	images, err := fn(ctx)
	if err != nil {
		ti.logger.Warn("image inventory unavailable", "source", kind, "err", err)
		return nil
	}
	ti.logger.Debug("image inventory loaded", "source", kind, "count", len(images))
	return images
}

// Catalog returns the merged registry and local inventory.
func (ti *ToolImages) Catalog() []CatalogEntry {
	return MergeCatalog(ti.Registry, ti.Local)
}

// AvailabilityOf classifies a single image identifier.
func (ti *ToolImages) AvailabilityOf(image string) Availability {
	local := contains(ti.Local, image)
	registry := contains(ti.Registry, image)
	switch {
	case local && registry:
		return LocalAndRegistry
	case local:
		return LocalOnly
	case registry:
		return RegistryOnly
	default:
		return AvailabilityNone
	}
}

// CheckAvailability annotates every tool of env with its availability.
func (ti *ToolImages) CheckAvailability(env *DevEnv) {
	for i := range env.Tools {
		env.Tools[i].Availability = ti.AvailabilityOf(env.Tools[i].Image())
	}
}

// Pull retrieves the registry images of tools that are not present locally.
// Tools must have been annotated by CheckAvailability. Images that exist
// nowhere are logged and skipped. Pull errors are joined.
func (ti *ToolImages) Pull(ctx context.Context, tools []Tool) error {
	var pending []string
	for _, t := range tools {
		image := t.Image()
		switch t.Availability {
		case RegistryOnly:
			if !contains(pending, image) {
				pending = append(pending, image)
			}
		case AvailabilityNone:
			ti.logger.Warn("required image is not available", "tool", t.Type, "image", image)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if ti.Observer != nil {
		ti.Observer.PullStarted(len(pending))
		defer ti.Observer.PullFinished()
	}

	var errs []error
	for _, image := range pending {
		ti.logger.Info("pulling image", "image", image)
		err := ti.puller.Pull(ctx, image)
		if ti.Observer != nil {
			ti.Observer.ImagePulled(image, err)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ti.Local = append(ti.Local, image)
	}
	if len(errs) > 0 {
		return fmt.Errorf("retrieving tool images: %w", errors.Join(errs...))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
