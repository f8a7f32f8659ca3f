package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-gol/gridfile"
	"github.com/sheikhrachel/go-gol/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Encoding         string  `json:"encoding" yaml:"encoding"`
	Iterations       uint    `json:"iterations" yaml:"iterations"`
	InputFile        string  `json:"input_file" yaml:"input_file"`
	OutputFile       string  `json:"output_file" yaml:"output_file"`
	Render           string  `json:"render" yaml:"render"`
	Quiet            bool    `json:"quiet" yaml:"quiet"`
	Compare          bool    `json:"compare" yaml:"compare"`
	Pattern          string  `json:"pattern" yaml:"pattern"`
	RandomSize       int     `json:"random_size" yaml:"random_size"`
	RandomDensity    float64 `json:"random_density" yaml:"random_density"`
	Seed             int64   `json:"seed" yaml:"seed"`
	DetectStagnation bool    `json:"detect_stagnation" yaml:"detect_stagnation"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Encoding:         model.KindPacked.String(),
		Iterations:       1,
		Render:           "digits",
		Pattern:          string(model.PatternRandom),
		RandomSize:       16,
		RandomDensity:    0.3,
		Seed:             1,
		DetectStagnation: true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Kind returns the configured grid encoding
func (c Config) Kind() (model.Kind, error) {
	return model.ParseKind(c.Encoding)
}

// Validate checks the fields that can be checked without reading the input grid
func (c Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return errors.Wrap(err, "[Config.Validate] encoding")
	}
	if _, err := model.NewRenderer(c.Render); err != nil {
		return errors.Wrap(err, "[Config.Validate] render")
	}
	if _, err := model.ParsePattern(c.Pattern); err != nil {
		return errors.Wrap(err, "[Config.Validate] pattern")
	}
	if c.RandomSize < 0 || c.RandomSize > gridfile.MaxSize {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] random_size %d outside [0,%d]", c.RandomSize, gridfile.MaxSize)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] random_density %v outside [0,1]", c.RandomDensity)
	}
	return nil
}
