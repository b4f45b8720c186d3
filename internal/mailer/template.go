package mailer

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// Substitute replaces {placeholder} tokens with their values. Tokens with no
// entry in vars resolve to the empty string rather than being left in place.
func Substitute(body string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(token string) string {
		return vars[token[1:len(token)-1]]
	})
}
