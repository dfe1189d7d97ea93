// Package variants holds the variant-rule contract of the utility engine and
// the rules implementing it. A variant rule inspects the front of a class
// token; when it recognizes a prefix it consumes it and hands back a rewrite
// to run over the declarations produced for the rest of the token.
package variants

// PropertyEntry is one produced style declaration. A nil Value means the
// entry carries no value and is never a rewrite candidate.
type PropertyEntry struct {
	Name  string
	Value *string
}

// RewriteFunc transforms a produced declaration list. Implementations are
// total: they never remove or reorder entries, only replace values.
type RewriteFunc func([]PropertyEntry) []PropertyEntry

// MatchResult describes a successful variant match.
type MatchResult struct {
	// Matcher is the token suffix left for the rest of the pipeline.
	Matcher string
	// Consumed is the length of the recognized prefix, separator included.
	Consumed int
	// Operation is the resolved mixing operation, for rules that expose one.
	Operation *MixOperation
	// Rewrite is applied to the declarations produced for Matcher.
	Rewrite RewriteFunc
}

// Rule is the contract the dispatch pipeline expects from a variant.
type Rule interface {
	Name() string
	Match(token string) (*MatchResult, bool)
}

// Dispatch tries each rule in order against the token and returns the first
// match. The ok result is false when no rule matches.
func Dispatch(token string, rules []Rule) (Rule, *MatchResult, bool) {
	for _, rule := range rules {
		if result, ok := rule.Match(token); ok {
			return rule, result, true
		}
	}
	return nil, nil, false
}
