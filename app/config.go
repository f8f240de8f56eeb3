package app

import (
	"errors"
	"fmt"
	"strings"

	"texview/fb"
	"texview/snapshot"

	"github.com/lucasb-eyer/go-colorful"
)

// Filter selects how the texture is sampled.
type Filter uint8

const (
	FilterBilinear Filter = iota
	FilterNearest
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Filter(%d)", uint8(f))
	}
}

// ParseFilter accepts "nearest" or "bilinear".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "point":
		return FilterNearest, nil
	case "bilinear", "linear", "":
		return FilterBilinear, nil
	default:
		return 0, fmt.Errorf("app: unknown filter %q", s)
	}
}

// ParseColor parses a hex colour ("#1e1e1e" or "1e1e1e") into a packed pixel.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("app: colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return fb.RGB(r, g, b), nil
}

// Config holds the session settings gathered from the command line.
type Config struct {
	TexturePath string
	Filter      string
	Background  string
	HUD         bool
	MaxTexture  int

	// ShotsDir receives F12 snapshots. Empty disables them.
	ShotsDir string
	// Out is written with the last frame when the session ends.
	Out string

	Workers int
}

// Validate checks the config before any resource is acquired.
func (c Config) Validate() error {
	var errs []error
	if c.TexturePath == "" {
		errs = append(errs, errors.New("app: no texture path"))
	}
	if _, err := ParseFilter(c.Filter); err != nil {
		errs = append(errs, err)
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			errs = append(errs, err)
		}
	}
	if c.MaxTexture < 0 {
		errs = append(errs, fmt.Errorf("app: negative max texture size %d", c.MaxTexture))
	}
	if c.Out != "" && !snapshot.Supported(c.Out) {
		errs = append(errs, fmt.Errorf("app: output %q: want .png or .webp", c.Out))
	}
	return errors.Join(errs...)
}
