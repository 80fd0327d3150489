package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizePlaceName converts a configured place name into a form safe for
// output file names: diacritical marks are stripped ("São Paulo" becomes
// "Sao Paulo") and spaces become underscores. The report headings keep the
// original spelling; only file names use this form.
func normalizePlaceName(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("input string is not valid UTF-8")
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(result, " ", "_"), nil
}
