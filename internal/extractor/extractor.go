// Package extractor pulls candidate utility-class tokens out of source text.
package extractor

import "regexp"

// splitPattern separates class tokens the way class attributes and template
// literals delimit them: whitespace, quotes, and common code punctuation.
var splitPattern = regexp.MustCompile("[\\s'\"`;=>{}()]+")

// Extract splits code into candidate class tokens. Order follows the source;
// duplicates are dropped so each token is matched once downstream.
func Extract(code string) []string {
	seen := map[string]struct{}{}
	var tokens []string
	for _, token := range splitPattern.Split(code, -1) {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
