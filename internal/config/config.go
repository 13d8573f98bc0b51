package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/playperu/jeopardy/internal/jeopardy"
)

type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath      string     `env:"DB_PATH" envDefault:"data/templates.db"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	MaxSessions int        `env:"MAX_SESSIONS" envDefault:"64"`
	SPADir      string     `env:"SPA_DIR"`
	SeedDemo    bool       `env:"SEED_DEMO" envDefault:"true"`

	BoardRows    int      `env:"BOARD_ROWS" envDefault:"5"`
	BoardCols    int      `env:"BOARD_COLS" envDefault:"6"`
	MinRows      int      `env:"MIN_ROWS" envDefault:"3"`
	MaxRows      int      `env:"MAX_ROWS" envDefault:"10"`
	MinCols      int      `env:"MIN_COLS" envDefault:"3"`
	MaxCols      int      `env:"MAX_COLS" envDefault:"8"`
	MaxTeams     int      `env:"MAX_TEAMS" envDefault:"5"`
	DefaultTeams []string `env:"DEFAULT_TEAMS" envDefault:"Team 1,Team 2,Team 3" envSeparator:","`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.MinRows < 1 || c.MinRows > c.MaxRows {
		return fmt.Errorf("invalid row limits %d..%d", c.MinRows, c.MaxRows)
	}
	if c.MinCols < 1 || c.MinCols > c.MaxCols {
		return fmt.Errorf("invalid column limits %d..%d", c.MinCols, c.MaxCols)
	}
	if c.BoardRows < c.MinRows || c.BoardRows > c.MaxRows || c.BoardCols < c.MinCols || c.BoardCols > c.MaxCols {
		return fmt.Errorf("default board %dx%d outside limits", c.BoardRows, c.BoardCols)
	}
	if c.MaxTeams < 1 {
		return fmt.Errorf("MAX_TEAMS must be positive, got %d", c.MaxTeams)
	}
	if len(c.DefaultTeams) > c.MaxTeams {
		return fmt.Errorf("%d default teams exceed MAX_TEAMS=%d", len(c.DefaultTeams), c.MaxTeams)
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("MAX_SESSIONS must be positive, got %d", c.MaxSessions)
	}
	return nil
}

// GameOptions maps the board and roster settings onto jeopardy.Options.
func (c Config) GameOptions() jeopardy.Options {
	return jeopardy.Options{
		Rows:      c.BoardRows,
		Cols:      c.BoardCols,
		MinRows:   c.MinRows,
		MaxRows:   c.MaxRows,
		MinCols:   c.MinCols,
		MaxCols:   c.MaxCols,
		MaxTeams:  c.MaxTeams,
		TeamNames: c.DefaultTeams,
	}
}
