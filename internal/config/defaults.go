package config

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ApplyDefaults sets default values for zero values in cfg that can never
// be meant literally. Precision and sweep workers keep an explicit 0 (no
// decimals, no worker limit); Load starts from Default so that omitted
// values still get theirs.
func ApplyDefaults(cfg *Config) {
	if cfg.Kernel == "" {
		cfg.Kernel = "gaussian"
	}
	if len(cfg.Theta) == 0 {
		cfg.Theta = []float64{1}
	}
	if cfg.Dims == 0 {
		cfg.Dims = 1
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatTable
	}
}
