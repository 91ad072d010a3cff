package regexp2

import (
	"github.com/rs/zerolog"

	"docregex/search"
)

// EngineFactory implements the search.EngineFactory interface.
type EngineFactory struct {
	logger zerolog.Logger
}

// NewEngineFactory creates a search.EngineFactory that hands out independent
// engines. Each engine is single-threaded; concurrent callers take one each.
func NewEngineFactory(logger zerolog.Logger) search.EngineFactory {
	return &EngineFactory{logger: logger}
}

// NewRegexSearch creates a search.RegexSearch.
func (f *EngineFactory) NewRegexSearch() search.RegexSearch {
	return NewEngine(f.logger)
}
