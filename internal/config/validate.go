package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Export.BatchSize <= 0 {
		return fmt.Errorf("export.batch_size must be > 0 (got %d)", c.Export.BatchSize)
	}
	if c.Export.LookupConcurrency <= 0 {
		return fmt.Errorf("export.lookup_concurrency must be > 0 (got %d)", c.Export.LookupConcurrency)
	}
	if c.Export.ExampleMaxLen <= 0 {
		return fmt.Errorf("export.example_max_len must be > 0 (got %d)", c.Export.ExampleMaxLen)
	}
	return nil
}
