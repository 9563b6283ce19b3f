package config

type LogConfig struct {
	Level string `yaml:"level"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}

type ArenaConfig struct {
	Size int  `yaml:"size"`
	Lock bool `yaml:"lock"`
}

func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Size: 4 << 20,
		Lock: false,
	}
}

type SlabConfig struct {
	RegionSize uint32 `yaml:"region_size"`
	BlockSize  uint32 `yaml:"block_size"`
}

func NewSlabConfig() *SlabConfig {
	return &SlabConfig{
		RegionSize: 1 << 20,
		BlockSize:  64,
	}
}

type BuddyConfig struct {
	MinBlockSize uint32 `yaml:"min_block_size"`
	MaxOrder     int    `yaml:"max_order"`
}

func NewBuddyConfig() *BuddyConfig {
	return &BuddyConfig{
		MinBlockSize: 64,
		MaxOrder:     14,
	}
}

func (c *BuddyConfig) RegionSize() uint64 {
	return uint64(c.MinBlockSize) << c.MaxOrder
}

type WorkloadConfig struct {
	Seed       int64  `yaml:"seed"`
	Operations int    `yaml:"operations"`
	MaxSize    uint32 `yaml:"max_size"`
}

func NewWorkloadConfig() *WorkloadConfig {
	return &WorkloadConfig{
		Seed:       1,
		Operations: 10000,
		MaxSize:    4096,
	}
}
