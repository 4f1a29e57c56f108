package fix

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier derives a lowerCamel resource key from a message value.
// Runs of letters and digits become words, everything else is a
// separator. The result always starts with a letter: values opening
// with a digit get a "key" prefix, values with no usable characters
// fall back to "message".
func Identifier(value string) string {
	words := splitWords(value)
	if len(words) == 0 {
		return "message"
	}

	title := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}

	id := b.String()
	if unicode.IsDigit([]rune(id)[0]) {
		id = "key" + id
	}
	return id
}

// Suggestions lists rename candidates for a derived identifier, the
// derived name first and a disambiguated variant after it.
func Suggestions(id string) []string {
	return []string{id, id + "2"}
}

func splitWords(value string) []string {
	var words []string
	var cur strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}
