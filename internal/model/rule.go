package model

// PatternRule is one declarative classification rule: if Pattern matches a
// node's path (see the patterns package for the matching dialect), the node
// is reported as belonging to Category under the name Name.
type PatternRule struct {
	Name           string
	Pattern        string
	Category       Category
	ApplyTo        ApplyTo
	StopRecursion  bool
}
