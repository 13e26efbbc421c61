package visualizer

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bstviz/bstviz/pkg/layout"
)

// Config is the static configuration record supplied at construction time.
// The core consumes it; it does not own or reload it.
type Config struct {
	// MaxTreeSize bounds the node count; inserts beyond it fail.
	MaxTreeSize int `json:"maxTreeSize" yaml:"maxTreeSize"`

	// MaxHistorySize bounds the undo/redo depth; oldest entries are evicted.
	MaxHistorySize int `json:"maxHistorySize" yaml:"maxHistorySize"`

	// MinNodeValue and MaxNodeValue bound accepted values and the random
	// generation range.
	MinNodeValue int `json:"minNodeValue" yaml:"minNodeValue"`
	MaxNodeValue int `json:"maxNodeValue" yaml:"maxNodeValue"`

	// AnimationFPS is the target tick rate of the animation loop.
	AnimationFPS int `json:"animationFps" yaml:"animationFps"`

	Layout layout.Config `json:"layout" yaml:"layout"`
}

func DefaultConfig() Config {
	return Config{
		MaxTreeSize:    100,
		MaxHistorySize: 50,
		MinNodeValue:   -9999,
		MaxNodeValue:   9999,
		AnimationFPS:   60,
		Layout:         layout.DefaultConfig(),
	}
}

// LoadConfig reads a yaml config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read config file: %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file: %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.MaxTreeSize <= 0 {
		return errors.New("maxTreeSize must be positive")
	}

	if c.MaxHistorySize <= 0 {
		return errors.New("maxHistorySize must be positive")
	}

	if c.MinNodeValue >= c.MaxNodeValue {
		return errors.Errorf("invalid value range: [%d, %d]", c.MinNodeValue, c.MaxNodeValue)
	}

	if c.Layout.HorizontalGap <= 0 || c.Layout.VerticalGap <= 0 {
		return errors.New("layout gaps must be positive")
	}

	return nil
}
