package core

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LocalImageSource lists the images present in the local container cache.
type LocalImageSource interface {
	ListLocal(ctx context.Context) ([]string, error)
}

// ImagePuller retrieves an image into the local container cache.
type ImagePuller interface {
	Pull(ctx context.Context, image string) error
}

// DockerCLI talks to the container runtime through its command line client.
type DockerCLI struct {
	binary      string
	listTimeout time.Duration
	pullTimeout time.Duration
}

// NewDockerCLI creates a DockerCLI from the user settings.
func NewDockerCLI(s *Settings) *DockerCLI {
	return &DockerCLI{
		binary:      s.Docker,
		listTimeout: s.ListTimeout,
		pullTimeout: s.PullTimeout,
	}
}

// Available reports whether the client binary can be found on PATH.
func (d *DockerCLI) Available() bool {
	_, err := exec.LookPath(d.binary)
	return err == nil
}

// ListLocal returns the "repo:tag" identifiers of all local images.
func (d *DockerCLI) ListLocal(ctx context.Context) ([]string, error) {
	if !d.Available() {
		return nil, fmt.Errorf("%w: %s", ErrNoContainerEngine, d.binary)
	}
	cmd := exec.CommandContext(ctx, d.binary, "image", "ls", "--format", "{{.Repository}}:{{.Tag}}")
	output, err := runWithTimeout(cmd, d.listTimeout)
	if err != nil {
		return nil, fmt.Errorf("listing local images: %w: %s", err, strings.TrimSpace(output))
	}
	return parseImageList(output), nil
}

// Pull retrieves image from its registry.
func (d *DockerCLI) Pull(ctx context.Context, image string) error {
	if !d.Available() {
		return fmt.Errorf("%w: %s", ErrNoContainerEngine, d.binary)
	}
	cmd := exec.CommandContext(ctx, d.binary, "pull", image)
	output, err := runWithTimeout(cmd, d.pullTimeout)
	if err != nil {
		return fmt.Errorf("pulling %s: %w: %s", image, err, strings.TrimSpace(output))
	}
	return nil
}

// parseImageList parses `image ls` output, skipping dangling images.
func parseImageList(output string) []string {
	var images []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "<none>") || seen[line] {
			continue
		}
		seen[line] = true
		images = append(images, line)
	}
	return images
}

// runWithTimeout runs cmd and returns its combined output, killing the
// process when timeout elapses.
func runWithTimeout(cmd *exec.Cmd, timeout time.Duration) (string, error) {
	done := make(chan struct{})
	var output []byte
	var cmdErr error

	go func() {
		output, cmdErr = cmd.CombinedOutput()
		close(done)
	}()

	select {
	case <-done:
		return string(output), cmdErr
	case <-time.After(timeout):
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-done
		return "", fmt.Errorf("command timed out after %s", timeout)
	}
}
