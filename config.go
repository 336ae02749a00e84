package teibow

// Extractor names accepted by Config.Extractor.
const (
	ExtractorTEI     = "tei"
	ExtractorEtree   = "etree"
	ExtractorGoquery = "goquery"
)

// Config holds pipeline settings. The zero value is not useful; start from
// DefaultConfig and override.
type Config struct {
	// SampleSize caps the number of documents processed.
	// 0 or out-of-range means all discovered documents.
	SampleSize int `toml:"sample_size"`

	// TableLength caps the number of (word, count) rows written.
	// 0 or out-of-range means all unique words.
	TableLength int `toml:"table_length"`

	// OutputPath is the destination for the TSV result.
	OutputPath string `toml:"output_path"`

	// Seed fixes sampler determinism.
	Seed int64 `toml:"seed"`

	// Extractor selects the text extractor implementation:
	// "tei", "etree" or "goquery".
	Extractor string `toml:"extractor"`

	// DatabasePath is the run-history database location.
	// Empty means no run history is recorded.
	DatabasePath string `toml:"database_path"`
}

// DefaultConfig returns the default pipeline settings.
func DefaultConfig() *Config {
	return &Config{
		SampleSize:  0,
		TableLength: 0,
		OutputPath:  "bow.txt",
		Seed:        4,
		Extractor:   ExtractorTEI,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	switch c.Extractor {
	case ExtractorTEI, ExtractorEtree, ExtractorGoquery:
	default:
		return Errorf(EINVALID, "unknown extractor %q", c.Extractor)
	}
	return nil
}
