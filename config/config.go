package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-freelist/pkg/freelist"
	"go-freelist/util/helpers"
)

type AppConfig struct {
	Log      *LogConfig      `yaml:"log"`
	Arena    *ArenaConfig    `yaml:"arena"`
	Slab     *SlabConfig     `yaml:"slab"`
	Buddy    *BuddyConfig    `yaml:"buddy"`
	Workload *WorkloadConfig `yaml:"workload"`
}

func New() *AppConfig {
	return &AppConfig{
		Log:      NewLogConfig(),
		Arena:    NewArenaConfig(),
		Slab:     NewSlabConfig(),
		Buddy:    NewBuddyConfig(),
		Workload: NewWorkloadConfig(),
	}
}

// Load overlays the YAML file at path on the defaults. A missing file is not
// an error.
func Load(path string) (*AppConfig, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid config")
}

// Validate checks that the slab and buddy regions fit into the arena.
func (c *AppConfig) Validate() error {
	if c.Slab.BlockSize < uint32(freelist.NodeSize) {
		return errors.Errorf("slab block size %d is smaller than a node (%d)", c.Slab.BlockSize, freelist.NodeSize)
	}
	if !helpers.IsPowerOfTwo(c.Buddy.MinBlockSize) {
		return errors.Errorf("buddy min block size %d is not a power of two", c.Buddy.MinBlockSize)
	}
	if c.Buddy.MinBlockSize < uint32(freelist.DoublyNodeSize) {
		return errors.Errorf("buddy min block size %d is smaller than a node (%d)", c.Buddy.MinBlockSize, freelist.DoublyNodeSize)
	}

	need := uint64(c.Slab.RegionSize) + c.Buddy.RegionSize()
	if need > uint64(c.Arena.Size) {
		return errors.Errorf("arena size %d can't hold slab (%d) and buddy (%d) regions",
			c.Arena.Size, c.Slab.RegionSize, c.Buddy.RegionSize())
	}
	return nil
}
