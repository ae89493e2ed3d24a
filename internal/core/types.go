// Package core provides the business logic for dem.
// It has zero UI dependencies and is independently testable.
package core

// Supported tool types, in the order they are offered to the user.
const (
	ToolTypeBuildSystem   = "build system"
	ToolTypeToolchain     = "toolchain"
	ToolTypeDebugger      = "debugger"
	ToolTypeDeployer      = "deployer"
	ToolTypeTestFramework = "test framework"
)

// SupportedToolTypes returns the fixed list of tool type categories.
func SupportedToolTypes() []string {
	return []string{
		ToolTypeBuildSystem,
		ToolTypeToolchain,
		ToolTypeDebugger,
		ToolTypeDeployer,
		ToolTypeTestFramework,
	}
}

// IsSupportedToolType reports whether t is one of SupportedToolTypes.
func IsSupportedToolType(t string) bool {
	for _, s := range SupportedToolTypes() {
		if s == t {
			return true
		}
	}
	return false
}

// Availability classifies where a tool image can be found.
type Availability int

const (
	AvailabilityUnknown Availability = iota // Not checked yet
	AvailabilityNone                        // Neither local nor in the registry
	LocalOnly
	RegistryOnly
	LocalAndRegistry
)

// String returns the short tag shown next to catalog entries.
func (a Availability) String() string {
	switch a {
	case LocalOnly:
		return "local"
	case RegistryOnly:
		return "registry"
	case LocalAndRegistry:
		return "local and registry"
	case AvailabilityNone:
		return "not available"
	default:
		return "unknown"
	}
}

// Local reports whether an image with this availability exists locally.
func (a Availability) Local() bool {
	return a == LocalOnly || a == LocalAndRegistry
}

// StoreFile is the on-disk layout of ~/.dem/dev_env.json.
type StoreFile struct {
	Version         string    `json:"version"`
	DevelopmentEnvs []*DevEnv `json:"development_environments"`
}

// DevEnv is a named Development Environment.
type DevEnv struct {
	Name  string `json:"name"`
	Tools []Tool `json:"tools"`
}

// Tool binds a tool type to a container image.
type Tool struct {
	Type         string       `json:"type"`
	ImageName    string       `json:"image_name"`    // "registry/repo" or "repo"
	ImageVersion string       `json:"image_version"` // Tag
	Availability Availability `json:"-"`             // Set by ToolImages.CheckAvailability
}

// Image returns the "name:tag" identifier of the tool image.
func (t Tool) Image() string {
	return t.ImageName + ":" + t.ImageVersion
}

// Clone returns a deep copy of the environment.
func (e *DevEnv) Clone() *DevEnv {
	c := &DevEnv{Name: e.Name}
	if e.Tools != nil {
		c.Tools = make([]Tool, len(e.Tools))
		copy(c.Tools, e.Tools)
	}
	return c
}

// Installed reports whether every tool image of the environment is present
// locally. Call ToolImages.CheckAvailability first.
func (e *DevEnv) Installed() bool {
	for _, t := range e.Tools {
		if !t.Availability.Local() {
			return false
		}
	}
	return true
}

// CatalogEntry is one row of the merged tool image catalog.
type CatalogEntry struct {
	Image        string       // "repo:tag" or "registry/repo:tag"
	Availability Availability // LocalOnly, RegistryOnly or LocalAndRegistry
}
