package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/hobby-tracker/internal/model"
)

//go:embed catalog.yaml
var builtinYAML []byte

// Catalog validation errors
var (
	ErrEmptyPalette      = errors.New("catalog palette is empty")
	ErrEmptyDefaultEmoji = errors.New("catalog default emoji is empty")
	ErrEmptySeedName     = errors.New("catalog seed entry has an empty name")
	ErrDuplicateSeed     = errors.New("catalog seed contains duplicate names")
)

// Catalog is the seed set, palette and default glyph.
type Catalog struct {
	DefaultEmoji string       `yaml:"default_emoji"`
	Seed         []model.Seed `yaml:"seed"`
	Palette      []string     `yaml:"palette"`
}

// Default returns a copy of the built-in catalog. It panics if the embedded
// document is invalid, which can only happen through a broken build.
func Default() *Catalog {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document. Fields missing from the
// document fall back to the built-in default emoji and palette; the seed set
// is taken as given (an empty seed is a valid, empty starting list).
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.DefaultEmoji = strings.TrimSpace(c.DefaultEmoji)
	if c.DefaultEmoji == "" && len(c.Palette) > 0 {
		c.DefaultEmoji = c.Palette[0]
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog invariants: a non-empty palette and default
// glyph, and a seed set with non-empty, case-insensitively unique names.
func (c *Catalog) Validate() error {
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	if c.DefaultEmoji == "" {
		return ErrEmptyDefaultEmoji
	}

	seen := make(map[string]string, len(c.Seed))
	for i, s := range c.Seed {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("seed entry %d: %w", i, ErrEmptySeedName)
		}
		key := model.FoldName(s.Name)
		if first, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateSeed, first, s.Name)
		}
		seen[key] = s.Name
	}
	return nil
}

// SeedCopy returns the seed entries as a fresh slice.
func (c *Catalog) SeedCopy() []model.Seed {
	out := make([]model.Seed, len(c.Seed))
	copy(out, c.Seed)
	return out
}

// PaletteCopy returns the palette as a fresh slice.
func (c *Catalog) PaletteCopy() []string {
	out := make([]string, len(c.Palette))
	copy(out, c.Palette)
	return out
}
