package mdocx

import (
	"regexp"
	"sort"
)

// legacyPatterns are scanned independently, in this priority order
var legacyPatterns = []struct {
	re     *regexp.Regexp
	format Format
}{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), Bold},
	{regexp.MustCompile(`\*(.*?)\*`), Italic},
	{regexp.MustCompile("`(.*?)`"), Code},
	{regexp.MustCompile(`~~(.*?)~~`), Strike},
	{regexp.MustCompile(`__(.*?)__`), Underline},
}

// FormatInlineLegacy resolves inline markup with one independent scan per
// delimiter. Matches from different patterns are sorted by start offset and
// never deduplicated, so overlapping markup produces repeated or empty spans.
// Escaped markup characters lose their backslash but are still scanned.
// It exists for output compatibility with older documents; FormatInline is
// the correct resolver.
func FormatInlineLegacy(text string) []StyledSpan {
	type match struct {
		start, end           int
		innerStart, innerEnd int
		format               Format
	}

	var matches []match
	for _, p := range legacyPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, match{
				start:      loc[0],
				end:        loc[1],
				innerStart: loc[2],
				innerEnd:   loc[3],
				format:     p.format,
			})
		}
	}

	if len(matches) == 0 {
		return []StyledSpan{{Text: unescapeInline(text), Start: 0, End: len(text)}}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	var spans []StyledSpan
	lastEnd := 0
	for _, m := range matches {
		if m.start > lastEnd {
			spans = append(spans, StyledSpan{Text: unescapeInline(text[lastEnd:m.start]), Start: lastEnd, End: m.start})
		}
		spans = append(spans, StyledSpan{
			Text:   unescapeInline(text[m.innerStart:m.innerEnd]),
			Format: m.format,
			Start:  m.innerStart,
			End:    m.innerEnd,
		})
		lastEnd = m.end
	}
	if lastEnd < len(text) {
		spans = append(spans, StyledSpan{Text: unescapeInline(text[lastEnd:]), Start: lastEnd, End: len(text)})
	}
	return spans
}
