package episode

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// seasonNumeralPattern matches Roman numerals II-IX when preceded by a
// space. Standalone "I" and "X" are excluded: too many titles use them
// literally (e.g. "SPY x FAMILY"). Case-insensitive because input is
// lowercased by CleanTitle.
var seasonNumeralPattern = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var numeralValues = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

// CleanTitle normalizes a parsed title for comparison: lowercase,
// accents folded, season numerals converted to digits, leading
// articles dropped, punctuation removed, whitespace collapsed.
// The result is for matching only; organized directories keep the
// title exactly as parsed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)

	s = seasonNumeralPattern.ReplaceAllStringFunc(s, func(match string) string {
		if v, ok := numeralValues[strings.ToLower(strings.TrimSpace(match))]; ok {
			return " " + v
		}
		return match
	})

	s = foldAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "'", "")

	// Strip a leading article from each colon-separated part, so
	// subtitles compare the same way as main titles.
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = stripArticle(strings.TrimSpace(p))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

func stripArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
