package tenk

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// NormalizeText folds the Unicode and HTML-entity noise that SEC filings
// carry into plain text before any pattern matching happens. Header label
// regexes and keyword predicates assume this has run.
//
// Performed:
//   - common HTML entities (&nbsp;, &amp;, &rsquo;, ...) decoded
//   - numeric character references (&#160; etc.) decoded
//   - Unicode spaces (NBSP, en/em spaces, narrow NBSP) folded to " "
//   - zero-width and format characters removed
//   - CRLF/CR folded to LF
func NormalizeText(data []byte) []byte {
	text := decodeEntities(string(data))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case isUnicodeSpace(r):
			b.WriteRune(' ')
		case isInvisible(r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return []byte(b.String())
}

// entityReplacer covers the entities that actually occur in EDGAR documents.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&rsquo;", "'",
	"&lsquo;", "'",
	"&ldquo;", `"`,
	"&rdquo;", `"`,
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "...",
	"&bull;", "•",
	"&sect;", "§",
	"&trade;", "™",
	"&reg;", "®",
	"&copy;", "©",
)

var numericEntityPattern = regexp.MustCompile(`&#(\d+);`)

func decodeEntities(text string) string {
	text = entityReplacer.Replace(text)
	return numericEntityPattern.ReplaceAllStringFunc(text, func(match string) string {
		code, err := strconv.Atoi(match[2 : len(match)-1])
		if err != nil || code <= 0 || code >= 0x110000 {
			return match
		}
		switch code {
		case 160:
			return " "
		case 8216, 8217:
			return "'"
		case 8220, 8221:
			return `"`
		}
		return string(rune(code))
	})
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case '\u00A0', '\u202F', '\u205F', '\u3000':
		return true
	}
	// En quad (U+2000) through hair space (U+200A).
	return r >= '\u2000' && r <= '\u200A'
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u180E':
		return true
	}
	return unicode.Is(unicode.Cf, r) && r != '\t' && r != '\n'
}

var (
	runsOfWhitespace = regexp.MustCompile(`\s+`)
	pageMarker       = regexp.MustCompile(`Page \d+ of \d+`)
)

// CleanExtractedText tidies text after extraction from a parsed document:
// whitespace runs collapse to single spaces and page markers are dropped.
// More aggressive than input normalization; meant for indexing output.
func CleanExtractedText(text string) string {
	text = pageMarker.ReplaceAllString(text, "")
	text = runsOfWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
