package world

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfilesYAML []byte

// GenerationProfile is a named set of synthesis parameters for one map
// archetype. Values handed out by a Registry are copies.
type GenerationProfile struct {
	Name                string
	NoiseFrequency      float64
	Octaves             int
	ElevationMultiplier float64
	SeaLevelAdjustment  float64
	WaterFlowIntensity  float64
	RiverGenerationRate float64
	TerrainBias         map[TerrainKind]float64
}

// Bias returns the classification weight for kind, 1.0 when unset.
func (p GenerationProfile) Bias(kind TerrainKind) float64 {
	if w, ok := p.TerrainBias[kind]; ok {
		return w
	}
	return 1.0
}

func (p GenerationProfile) clone() GenerationProfile {
	bias := make(map[TerrainKind]float64, len(p.TerrainBias))
	for k, v := range p.TerrainBias {
		bias[k] = v
	}
	p.TerrainBias = bias
	return p
}

// profileFile is the on-disk YAML layout.
type profileFile struct {
	Default  string        `yaml:"default"`
	Profiles []profileYAML `yaml:"profiles"`
}

type profileYAML struct {
	Name                string             `yaml:"name"`
	NoiseFrequency      float64            `yaml:"noise_frequency"`
	Octaves             int                `yaml:"octaves"`
	ElevationMultiplier float64            `yaml:"elevation_multiplier"`
	SeaLevelAdjustment  float64            `yaml:"sea_level_adjustment"`
	WaterFlowIntensity  float64            `yaml:"water_flow_intensity"`
	RiverGenerationRate float64            `yaml:"river_generation_rate"`
	TerrainBias         map[string]float64 `yaml:"terrain_bias"`
}

func (y profileYAML) toProfile() (GenerationProfile, error) {
	p := GenerationProfile{
		Name:                strings.TrimSpace(y.Name),
		NoiseFrequency:      y.NoiseFrequency,
		Octaves:             y.Octaves,
		ElevationMultiplier: y.ElevationMultiplier,
		SeaLevelAdjustment:  y.SeaLevelAdjustment,
		WaterFlowIntensity:  y.WaterFlowIntensity,
		RiverGenerationRate: y.RiverGenerationRate,
		TerrainBias:         make(map[TerrainKind]float64, len(y.TerrainBias)),
	}
	if p.Octaves == 0 {
		p.Octaves = 1
	}

	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.NoiseFrequency <= 0 {
		errs = append(errs, fmt.Errorf("noise_frequency must be positive, got %v", p.NoiseFrequency))
	}
	if p.Octaves < 0 {
		errs = append(errs, fmt.Errorf("octaves must not be negative, got %d", p.Octaves))
	}
	if p.ElevationMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("elevation_multiplier must be positive, got %v", p.ElevationMultiplier))
	}
	if p.WaterFlowIntensity < 0 {
		errs = append(errs, fmt.Errorf("water_flow_intensity must not be negative, got %v", p.WaterFlowIntensity))
	}
	if p.RiverGenerationRate < 0 || p.RiverGenerationRate > 1 {
		errs = append(errs, fmt.Errorf("river_generation_rate must be within [0,1], got %v", p.RiverGenerationRate))
	}
	for name, w := range y.TerrainBias {
		kind, err := ParseTerrainKind(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("terrain_bias: %w", err))
			continue
		}
		if w < 0 {
			errs = append(errs, fmt.Errorf("terrain_bias %s must not be negative, got %v", kind, w))
			continue
		}
		p.TerrainBias[kind] = w
	}
	if err := errors.Join(errs...); err != nil {
		return GenerationProfile{}, fmt.Errorf("profile %q: %w", y.Name, err)
	}
	return p, nil
}

// Registry maps archetype names to generation profiles.
type Registry struct {
	profiles    map[string]GenerationProfile // keyed by lower-cased name
	defaultName string
}

// ParseRegistry builds a registry from YAML profile data.
func ParseRegistry(data []byte) (*Registry, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	if len(f.Profiles) == 0 {
		return nil, errors.New("parse profiles: no profiles defined")
	}

	r := &Registry{profiles: make(map[string]GenerationProfile, len(f.Profiles))}
	for _, py := range f.Profiles {
		p, err := py.toProfile()
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(p.Name)
		if _, dup := r.profiles[key]; dup {
			return nil, fmt.Errorf("parse profiles: duplicate profile %q", p.Name)
		}
		r.profiles[key] = p
	}

	r.defaultName = strings.TrimSpace(f.Default)
	if r.defaultName == "" {
		r.defaultName = f.Profiles[0].Name
	}
	if _, ok := r.profiles[strings.ToLower(r.defaultName)]; !ok {
		return nil, fmt.Errorf("parse profiles: default profile %q not defined", r.defaultName)
	}
	return r, nil
}

// DefaultRegistry returns the built-in archetypes.
func DefaultRegistry() *Registry {
	r, err := ParseRegistry(defaultProfilesYAML)
	if err != nil {
		// The embedded file is part of the build.
		panic(fmt.Sprintf("embedded profiles: %v", err))
	}
	return r
}

// LoadRegistry loads generation profiles.
// Search order: customPath -> ~/.hexfront/profiles.yaml -> ./configs/profiles.yaml -> embedded default.
// Only a failing customPath is an error; the other locations are skipped
// when missing or malformed.
func LoadRegistry(customPath string) (*Registry, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profiles %s: %w", customPath, err)
		}
		r, err := ParseRegistry(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles %s: %w", customPath, err)
		}
		return r, nil
	}

	for _, path := range []string{userProfilesPath(), filepath.Join("configs", "profiles.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		r, err := ParseRegistry(data)
		if err != nil {
			slog.Warn("ignoring malformed profiles file", "path", path, "error", err)
			continue
		}
		slog.Debug("profiles loaded", "path", path)
		return r, nil
	}

	return DefaultRegistry(), nil
}

// userProfilesPath returns the per-user profile file, or empty if home is unavailable.
func userProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexfront", "profiles.yaml")
}

// Lookup returns the named profile, ignoring case.
func (r *Registry) Lookup(name string) (GenerationProfile, bool) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return GenerationProfile{}, false
	}
	return p.clone(), true
}

// Default returns the registry's fallback profile.
func (r *Registry) Default() GenerationProfile {
	return r.profiles[strings.ToLower(r.defaultName)].clone()
}

// Profile returns the named profile, substituting the default for an
// unknown archetype.
func (r *Registry) Profile(name string) GenerationProfile {
	if p, ok := r.Lookup(name); ok {
		return p
	}
	slog.Warn("unknown map archetype, using default", "archetype", name, "default", r.defaultName)
	return r.Default()
}

// Names returns the profile names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
