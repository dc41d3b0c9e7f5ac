package scrollback

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Width classifier names accepted by Config.Width.
const (
	WidthUniWidth  = "uniwidth"
	WidthRuneWidth = "runewidth"
)

// Config describes a Buffer in YAML:
//
//	backlog_limit: 1000
//	line_capacity: 132
//	width: runewidth
//	fill:
//	  char: " "
//	  fg: 7
//	  bg: 0
type Config struct {
	BacklogLimit int        `yaml:"backlog_limit"`
	LineCapacity int        `yaml:"line_capacity,omitempty"`
	Width        string     `yaml:"width,omitempty"`
	Fill         FillConfig `yaml:"fill"`
}

// FillConfig describes the fill cell. Colors are palette indexes; nil keeps the defaults.
type FillConfig struct {
	Char string `yaml:"char,omitempty"`
	Fg   *int   `yaml:"fg,omitempty"`
	Bg   *int   `yaml:"bg,omitempty"`
}

// LoadConfig decodes a YAML configuration and validates it.
// An empty document yields the zero Config, which is valid.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration without building a buffer.
func (c Config) Validate() error {
	if c.BacklogLimit < 0 {
		return fmt.Errorf("%w: negative backlog_limit %d", ErrInvalidArgument, c.BacklogLimit)
	}
	if c.LineCapacity < 0 {
		return fmt.Errorf("%w: negative line_capacity %d", ErrInvalidArgument, c.LineCapacity)
	}
	if _, err := c.widthFunc(); err != nil {
		return err
	}
	if c.Fill.Char != "" && utf8.RuneCountInString(c.Fill.Char) != 1 {
		return fmt.Errorf("%w: fill char %q must be a single character", ErrInvalidArgument, c.Fill.Char)
	}
	for name, idx := range map[string]*int{"fg": c.Fill.Fg, "bg": c.Fill.Bg} {
		if idx != nil && (*idx < 0 || *idx >= len(Palette)) {
			return fmt.Errorf("%w: fill %s index %d out of palette", ErrInvalidArgument, name, *idx)
		}
	}
	return nil
}

// FillCell builds the fill cell described by the configuration.
func (c Config) FillCell() Cell {
	cell := NewCell()
	if c.Fill.Char != "" {
		r, _ := utf8.DecodeRuneInString(c.Fill.Char)
		cell = cell.WithChar(r)
	}
	if c.Fill.Fg != nil {
		cell.Fg = IndexedColor{Index: *c.Fill.Fg}
	}
	if c.Fill.Bg != nil {
		cell.Bg = IndexedColor{Index: *c.Fill.Bg}
	}
	return cell
}

// New builds a Buffer from the configuration. opts are applied after the
// configured ones and may override them.
func (c Config) New(opts ...Option) (*Buffer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fn, _ := c.widthFunc()
	base := []Option{WithWidthFunc(fn)}
	if c.LineCapacity > 0 {
		base = append(base, WithLineCapacity(c.LineCapacity))
	}

	return New(c.BacklogLimit, c.FillCell(), append(base, opts...)...)
}

func (c Config) widthFunc() (WidthFunc, error) {
	switch c.Width {
	case "", WidthUniWidth:
		return UniWidth, nil
	case WidthRuneWidth:
		return RuneWidth, nil
	default:
		return nil, fmt.Errorf("%w: unknown width classifier %q", ErrInvalidArgument, c.Width)
	}
}
