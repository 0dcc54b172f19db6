package experiments

import (
	"alphabeta/meta"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes an experiment. Zero values are replaced by the meta defaults.
type Config struct {
	Name     string          `yaml:"name"`
	Size     int             `yaml:"size"`
	Games    int             `yaml:"games"`    // Per match-up
	Openings int             `yaml:"openings"` // Random moves before the search takes over
	Seed     uint64          `yaml:"seed"`
	Parallel int             `yaml:"parallel"` // Games played at the same time
	Output   string          `yaml:"output"`   // No files are written when set to "-"
	MatchUps []MatchUpConfig `yaml:"match_ups"`
	Depths   []int           `yaml:"pruning_depths"` // Depths compared by the pruning experiment
}

type MatchUpConfig struct {
	Depth1 int `yaml:"depth1"`
	Depth2 int `yaml:"depth2"`
}

// LoadConfig reads a YAML experiment file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read experiment config %s", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse experiment config %s", path)
	}

	cfg.setDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "depths"
	}
	if c.Size == 0 {
		c.Size = meta.BOARD_SIZE
	}
	if c.Games == 0 {
		c.Games = meta.GAMES
	}
	if c.Parallel == 0 {
		c.Parallel = meta.PARALLEL
	}
	if c.Output == "" {
		c.Output = meta.OUTPUT
	}
	if len(c.MatchUps) == 0 {
		c.MatchUps = []MatchUpConfig{{Depth1: meta.DEPTH, Depth2: meta.DEPTH}}
	}
}

func (c Config) Validate() error {
	if c.Size < 2 {
		return errors.Errorf("board size must be at least 2, got %d", c.Size)
	}
	if c.Games < 1 {
		return errors.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.Openings < 0 {
		return errors.Errorf("openings must not be negative, got %d", c.Openings)
	}
	if c.Parallel < 1 {
		return errors.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	for i, m := range c.MatchUps {
		if m.Depth1 < 1 || m.Depth2 < 1 {
			return errors.Errorf("match-up %d: depths must be at least 1, got %d and %d", i+1, m.Depth1, m.Depth2)
		}
	}
	for _, depth := range c.Depths {
		if depth < 1 {
			return errors.Errorf("pruning depths must be at least 1, got %d", depth)
		}
	}
	return nil
}
