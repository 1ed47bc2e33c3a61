// internal/config/config.go
package config

type Config struct {
	Status     StatusConfig      `yaml:"status"`
	Conditions []ConditionConfig `yaml:"conditions"`
	Sources    []SourceConfig    `yaml:"sources"`
	Publish    *PublishConfig    `yaml:"publish"`
	Log        LogConfig         `yaml:"log"`
}

// ---- STORE ----

type StatusConfig struct {
	Banks     int  `yaml:"banks"`
	DebugTrap bool `yaml:"debug_trap"`
}

// ---- NAMED CONDITIONS ----

// ConditionConfig is one entry of the ID table.
type ConditionConfig struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"` // fault | warning | info
	Bank  uint16 `yaml:"bank"`
	Bit   uint16 `yaml:"bit"`
}

// ---- SOURCES ----

type SourceConfig struct {
	ID        string `yaml:"id"`
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Condition raised while polls fail (optional).
	CommFault string `yaml:"comm_fault"`

	Reads []ReadConfig `yaml:"reads"`
	Poll  PollConfig   `yaml:"poll"`
}

type ReadConfig struct {
	FC       uint8           `yaml:"fc"`
	Address  uint16          `yaml:"address"`
	Quantity uint16          `yaml:"quantity"`
	Bind     []BindingConfig `yaml:"bind"`
}

// BindingConfig ties one input bit of a read block to a condition.
// FC 1/2: offset is the coil index. FC 3/4: offset is register*16 + bit.
type BindingConfig struct {
	Offset    int    `yaml:"offset"`
	Condition string `yaml:"condition"`
	Invert    bool   `yaml:"invert"`
}

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- PUBLISH ----

type PublishConfig struct {
	Endpoint    string `yaml:"endpoint"`
	Transport   string `yaml:"transport"` // modbus | ingest
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	IntervalMs  int    `yaml:"interval_ms"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
