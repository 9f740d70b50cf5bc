package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/team-loco/workspaces/internal/entity"
)

const (
	ConfigFileName = "config.toml"
	DirName        = ".workspaces"
	DefaultProfile = "default"
)

// SessionConfig represents the CLI's local state.
// It is persisted to ~/.workspaces/config.toml.
type SessionConfig struct {
	Profiles       map[string]*Profile `toml:"profiles"`
	CurrentProfile string              `toml:"currentProfile"`
}

// Profile is a named host plus the entity last chosen with `use`.
type Profile struct {
	Host   string       `toml:"host,omitempty"`
	Entity SimpleEntity `toml:"entity"`
}

// SimpleEntity is the part of an entity kept between runs.
type SimpleEntity struct {
	Slug        string      `toml:"slug"`
	DisplayName string      `toml:"displayName"`
	Type        entity.Type `toml:"type"`
}

var ErrProfileNotFound = errors.New("profile not found")

// Dir returns ~/.workspaces, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	return dir, nil
}

func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// NewSessionConfig creates a new SessionConfig with the default profile.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		Profiles:       make(map[string]*Profile),
		CurrentProfile: DefaultProfile,
	}
}

// Load reads the SessionConfig from ~/.workspaces/config.toml. Returns a new config if the file doesn't exist.
func Load() (*SessionConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the SessionConfig at path.
func LoadFrom(path string) (*SessionConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewSessionConfig(), nil
	}

	var cfg SessionConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.CurrentProfile == "" {
		cfg.CurrentProfile = DefaultProfile
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}

	return &cfg, nil
}

// Save persists the SessionConfig to ~/.workspaces/config.toml.
func (c *SessionConfig) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

func (c *SessionConfig) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// GetProfile returns the current profile.
func (c *SessionConfig) GetProfile() (*Profile, error) {
	p, ok := c.Profiles[c.CurrentProfile]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, c.CurrentProfile)
	}
	return p, nil
}

// UseProfile switches the current profile, creating it if needed.
func (c *SessionConfig) UseProfile(name string) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("profile name cannot be empty")
	}

	if c.Profiles == nil {
		c.Profiles = make(map[string]*Profile)
	}

	p, exists := c.Profiles[name]
	if !exists {
		p = &Profile{}
		c.Profiles[name] = p
	}
	c.CurrentProfile = name
	return p, nil
}

// SetEntity records e as the current entity of the current profile. It does
// not persist the config.
func (c *SessionConfig) SetEntity(e entity.Entity) error {
	p, err := c.UseProfile(c.CurrentProfile)
	if err != nil {
		return err
	}
	p.Entity = SimpleEntity{Slug: e.Slug, DisplayName: e.DisplayName, Type: e.Type}
	return nil
}

// CurrentEntity returns the current profile's entity, if one was chosen.
func (c *SessionConfig) CurrentEntity() (SimpleEntity, bool) {
	p, err := c.GetProfile()
	if err != nil || p.Entity.Slug == "" {
		return SimpleEntity{}, false
	}
	return p.Entity, true
}
