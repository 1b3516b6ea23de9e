package config

import "path/filepath"

// Config is the root application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Refs   RefsConfig   `yaml:"refs"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig holds paths to the pipeline's own artifacts.
// Relative paths are resolved against Dir.
type DataConfig struct {
	Dir        string `yaml:"dir"         env:"DATA_DIR"         env-default:"./data"`
	RawWords   string `yaml:"raw_words"   env:"DATA_RAW_WORDS"   env-default:"raw_words.json"`
	CleanWords string `yaml:"clean_words" env:"DATA_CLEAN_WORDS" env-default:"clean_words.json"`
	AuditLog   string `yaml:"audit_log"   env:"DATA_AUDIT_LOG"   env-default:"ingest_audit.log"`
}

// RefsConfig holds paths to read-only reference datasets.
type RefsConfig struct {
	Stopwords      string `yaml:"stopwords"       env:"REFS_STOPWORDS"       env-default:"stopwords.txt"`
	KnownWords     string `yaml:"known_words"     env:"REFS_KNOWN_WORDS"     env-default:"known_words.txt"`
	LevelMap       string `yaml:"level_map"       env:"REFS_LEVEL_MAP"       env-default:"level_map.json"`
	FrequencyXLSX  string `yaml:"frequency_xlsx"  env:"REFS_FREQUENCY_XLSX"  env-default:"frequency.xlsx"`
	FrequencyCache string `yaml:"frequency_cache" env:"REFS_FREQUENCY_CACHE" env-default:"frequency_cache.json"`
	WordNetDir     string `yaml:"wordnet_dir"     env:"REFS_WORDNET_DIR"     env-default:"wordnet"`
}

// ExportConfig holds deck export settings.
type ExportConfig struct {
	Dir               string `yaml:"dir"                env:"EXPORT_DIR"                env-default:"decks"`
	BatchSize         int    `yaml:"batch_size"         env:"EXPORT_BATCH_SIZE"         env-default:"30"`
	LookupConcurrency int    `yaml:"lookup_concurrency" env:"EXPORT_LOOKUP_CONCURRENCY" env-default:"8"`
	ExampleMaxLen     int    `yaml:"example_max_len"    env:"EXPORT_EXAMPLE_MAX_LEN"    env-default:"120"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// resolve joins a possibly-relative path with the data directory.
func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// RawWordsPath returns the absolute-or-resolved raw words artifact path.
func (c *Config) RawWordsPath() string { return resolve(c.Data.Dir, c.Data.RawWords) }

// CleanWordsPath returns the resolved CleanEntry artifact path.
func (c *Config) CleanWordsPath() string { return resolve(c.Data.Dir, c.Data.CleanWords) }

// AuditLogPath returns the resolved ingest audit log path.
func (c *Config) AuditLogPath() string { return resolve(c.Data.Dir, c.Data.AuditLog) }

// StopwordsPath returns the resolved stop-word list path.
func (c *Config) StopwordsPath() string { return resolve(c.Data.Dir, c.Refs.Stopwords) }

// KnownWordsPath returns the resolved known-word list path.
func (c *Config) KnownWordsPath() string { return resolve(c.Data.Dir, c.Refs.KnownWords) }

// LevelMapPath returns the resolved level map path.
func (c *Config) LevelMapPath() string { return resolve(c.Data.Dir, c.Refs.LevelMap) }

// FrequencyXLSXPath returns the resolved frequency spreadsheet path.
func (c *Config) FrequencyXLSXPath() string { return resolve(c.Data.Dir, c.Refs.FrequencyXLSX) }

// FrequencyCachePath returns the resolved frequency cache path.
func (c *Config) FrequencyCachePath() string { return resolve(c.Data.Dir, c.Refs.FrequencyCache) }

// WordNetDirPath returns the resolved WordNet directory path.
func (c *Config) WordNetDirPath() string { return resolve(c.Data.Dir, c.Refs.WordNetDir) }

// ExportDirPath returns the resolved deck output directory.
func (c *Config) ExportDirPath() string { return resolve(c.Data.Dir, c.Export.Dir) }
