package recommend

// Config is everything the engine reads besides its inputs. Tables are owned by the
// engine after construction so tests can pass fixtures.
type Config struct {
	Providers *ProviderTable
	Keywords  KeywordTable
	// ExtendedPriorities also scores speed, customerService, flexibility and innovation
	// in the priority axis. Off by default.
	ExtendedPriorities bool
}

// DefaultConfig returns the embedded provider table and keyword lists.
func DefaultConfig() Config {
	return Config{
		Providers: DefaultProviderTable(),
		Keywords:  DefaultKeywordTable(),
	}
}

// Engine scores, explains and ranks plans for a profile. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	providers *ProviderTable
	keywords  KeywordTable
	extended  bool
}

// New constructs an Engine. Missing tables fall back to the defaults.
func New(cfg Config) *Engine {
	providers := cfg.Providers
	if providers == nil {
		providers = DefaultProviderTable()
	}
	keywords := cfg.Keywords
	if keywords == nil {
		keywords = DefaultKeywordTable()
	}
	return &Engine{
		providers: providers,
		keywords:  keywords.clone(),
		extended:  cfg.ExtendedPriorities,
	}
}
