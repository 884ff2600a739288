package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// MovieFilter is the predicate set composed for a single catalog query. A
// zero value means "no filtering". All matching is case-insensitive; actor
// terms match by substring, tag terms by exact name.
type MovieFilter struct {
	Title        string
	Actors       []string
	Tags         []string
	Year         int
	ExcludeTag   string
	ExcludeActor string
}

func (f MovieFilter) Empty() bool {
	return f.Title == "" &&
		len(f.Actors) == 0 &&
		len(f.Tags) == 0 &&
		f.Year == 0 &&
		f.ExcludeTag == "" &&
		f.ExcludeActor == ""
}

// ParseMovieFilter builds a MovieFilter from raw query parameters. Empty
// parameters are treated as not supplied; a non-numeric year is a validation
// failure.
func ParseMovieFilter(title, actor, tag, year, excludeTag, excludeActor string) (MovieFilter, error) {
	filter := MovieFilter{
		Title:        strings.TrimSpace(title),
		Actors:       splitTerms(actor),
		Tags:         splitTerms(tag),
		ExcludeTag:   strings.TrimSpace(excludeTag),
		ExcludeActor: strings.TrimSpace(excludeActor),
	}

	if y := strings.TrimSpace(year); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed <= 0 {
			return MovieFilter{}, fmt.Errorf("invalid year %q: %w", year, ErrValidation)
		}
		filter.Year = parsed
	}

	return filter, nil
}

// splitTerms splits a comma-separated parameter into trimmed, non-empty
// terms.
func splitTerms(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var terms []string
	for _, part := range strings.Split(value, ",") {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
