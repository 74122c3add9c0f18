package outline

// Weights is the scoring weight table. Positive weights push a line toward
// heading-hood, negative weights suppress sentence-shaped lines. The
// dominant false positive is a long, period-terminated, numbered prose
// paragraph, so Period and LongListItem carry strong negative weight.
type Weights struct {
	SizeRatio    float64 `yaml:"size_ratio"`
	Bold         float64 `yaml:"bold"`
	AllCaps      float64 `yaml:"all_caps"`
	Numbered     float64 `yaml:"numbered"`
	ShortLine    float64 `yaml:"short_line"`
	Colon        float64 `yaml:"colon"`
	Period       float64 `yaml:"period"`
	LongListItem float64 `yaml:"long_list_item"`
	Centered     float64 `yaml:"centered"`
	PerWord      float64 `yaml:"per_word"`
}

// Config holds every tunable of the engine. Zero-config callers should use
// DefaultConfig; the server and CLI can override fields from a YAML tuning
// file (see internal/config).
type Config struct {
	Weights   Weights `yaml:"weights"`
	Threshold float64 `yaml:"threshold"`

	// MinSizeRatio gates the size-ratio reward: a line only earns it when
	// its font is noticeably larger than body text.
	MinSizeRatio float64 `yaml:"min_size_ratio"`

	// ShortLineWords is the word-count cap below which a line counts as
	// short. SentenceWordCap plus a trailing period rejects a line outright.
	ShortLineWords  int `yaml:"short_line_words"`
	LongListWords   int `yaml:"long_list_words"`
	SentenceWordCap int `yaml:"sentence_word_cap"`

	// Style profiling.
	SamplePages      int      `yaml:"sample_pages"`
	FallbackBodySize float64  `yaml:"fallback_body_size"`
	BoldIndicators   []string `yaml:"bold_indicators"`

	// Noise detection. Band values are fractions of page height.
	HeaderBand      float64 `yaml:"header_band"`
	FooterBand      float64 `yaml:"footer_band"`
	TOCLineFraction float64 `yaml:"toc_line_fraction"`
	TOCMinLines     int     `yaml:"toc_min_lines"`
	TOCMaxLineLen   int     `yaml:"toc_max_line_len"`

	// Document classification.
	PosterDensity float64 `yaml:"poster_density"`

	// Line reconstruction: horizontal gap (page units) that splits a
	// vertical cluster into columns, and the centering tolerance as a
	// fraction of page width.
	ColumnGap       float64 `yaml:"column_gap"`
	CenterTolerance float64 `yaml:"center_tolerance"`

	// Title extraction. TitleMaxRatio is relative to the page's maximum
	// size, TitleBodyMultiple and CoverSizeMultiple to the body size.
	TitleMaxRatio     float64 `yaml:"title_max_ratio"`
	TitleBodyMultiple float64 `yaml:"title_body_multiple"`
	CoverSizeMultiple float64 `yaml:"cover_size_multiple"`

	// MaxLevels caps the explicit heading hierarchy; smaller residual
	// sizes bucket into the lowest level.
	MaxLevels int `yaml:"max_levels"`

	// Replacements is an optional dictionary of known garbled substrings
	// applied by the normalizer.
	Replacements map[string]string `yaml:"replacements"`
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			SizeRatio:    3.0,
			Bold:         2.5,
			AllCaps:      1.5,
			Numbered:     2.0,
			ShortLine:    1.5,
			Colon:        1.0,
			Period:       -5.0,
			LongListItem: -5.0,
			Centered:     0.5,
			PerWord:      0,
		},
		Threshold:    4.5,
		MinSizeRatio: 1.1,

		ShortLineWords:  10,
		LongListWords:   8,
		SentenceWordCap: 12,

		SamplePages:      3,
		FallbackBodySize: 10.0,
		BoldIndicators:   []string{"bold", "black", "oblique", "cn"},

		HeaderBand:      0.12,
		FooterBand:      0.10,
		TOCLineFraction: 0.2,
		TOCMinLines:     4,
		TOCMaxLineLen:   100,

		PosterDensity: 0.2,

		ColumnGap:       20,
		CenterTolerance: 0.08,

		TitleMaxRatio:     0.9,
		TitleBodyMultiple: 1.5,
		CoverSizeMultiple: 1.5,

		MaxLevels: 4,
	}
}
