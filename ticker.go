package portfolio

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// longTickerRegex accepts 4 or 5 uppercase letters tickers.
var longTickerRegex = regexp.MustCompile(`^[A-Z]{4,5}$`)

// ValidTicker reports whether s is a syntactically valid stock ticker.
//
// A ticker is made of letters, '.' and '-', and is either 1 to 4 characters long
// or 4 to 5 uppercase letters.
func ValidTicker(s string) bool {
	if s == "" {
		return false
	}
	if n := utf8.RuneCountInString(s); n > 4 && !longTickerRegex.MatchString(s) {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

// canonical returns the canonical form of a symbol.
func canonical(symbol string) string { return strings.ToUpper(symbol) }
