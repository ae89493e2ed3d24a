package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Decision is the user's answer to the overwrite question.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionSaveAs  Decision = "save as"
	DecisionCancel  Decision = "cancel"
)

// Decisions returns the choices in the order they are offered.
func Decisions() []Decision {
	return []Decision{DecisionConfirm, DecisionSaveAs, DecisionCancel}
}

// CommitRequest carries the outcome of a modification session.
type CommitRequest struct {
	Env      *DevEnv  // Environment the session started from
	Tools    []Tool   // Tool list built by the wizard
	Decision Decision // What to do with it
	NewName  string   // Name for DecisionSaveAs
}

// Commit applies a finished modification. Confirm overwrites Env, save as
// stores the tools under NewName and leaves Env untouched, cancel returns
// ErrAborted. Nothing is written unless all checks pass, and a failed write
// leaves the in-memory store as it was. After the store is persisted the
// edited environment is checked against the image inventory and its missing
// images are pulled. The edited environment is returned.
func (p *Platform) Commit(ctx context.Context, req CommitRequest) (*DevEnv, error) {
	var (
		target   *DevEnv
		rollback func()
	)

	switch req.Decision {
	case DecisionConfirm:
		target = req.Env
		old := target.Tools
		target.Tools = cloneTools(req.Tools)
		rollback = func() { target.Tools = old }

	case DecisionSaveAs:
		name := strings.TrimSpace(req.NewName)
		if name == "" {
			return nil, errors.New("the name of the new Development Environment must not be empty")
		}
		if p.Store.FindByName(name) != nil {
			return nil, fmt.Errorf("%w: %s", ErrDevEnvExists, name)
		}
		target = req.Env.Clone()
		target.Name = name
		target.Tools = cloneTools(req.Tools)
		p.Store.Append(target)
		rollback = func() { p.Store.remove(target) }

	case DecisionCancel:
		return nil, ErrAborted

	default:
		return nil, fmt.Errorf("unknown decision %q", req.Decision)
	}

	if err := p.Store.Persist(); err != nil {
		rollback()
		return nil, err
	}
	p.Logger.Debug("environment saved", "name", target.Name, "tools", len(target.Tools))

	p.Images.RefreshLocal(ctx)
	p.Images.CheckAvailability(target)
	if err := p.Images.Pull(ctx, target.Tools); err != nil {
		return target, err
	}
	p.Images.CheckAvailability(target)
	return target, nil
}

func cloneTools(tools []Tool) []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}
