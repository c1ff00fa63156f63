package classify

import (
	"path"
	"strings"
)

// CategoryPath is the ordered folder sequence a sample lands in under the
// destination root.
type CategoryPath []string

// ParseCategory splits a slash separated category such as "Drums/Kicks".
func ParseCategory(value string) CategoryPath {
	var out CategoryPath
	for _, segment := range strings.Split(value, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

// String joins the segments with forward slashes.
func (c CategoryPath) String() string {
	return path.Join(c...)
}

// Match describes why a category was chosen.
type Match struct {
	Category CategoryPath
	// Rule is the index into the rule table, or -1 for a fallback.
	Rule    int
	Keyword string
}

// Classifier evaluates an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New returns a classifier over rules. A nil or empty table uses DefaultRules.
func New(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify returns the category for a file name and its ancestor folder names.
func (c *Classifier) Classify(name string, ancestors []string) CategoryPath {
	return c.Match(name, ancestors).Category
}

// Match is Classify with the deciding rule and keyword attached.
func (c *Classifier) Match(name string, ancestors []string) Match {
	hay := haystack(name, ancestors)
	for i, r := range c.rules {
		for _, kw := range r.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(hay, strings.ToLower(kw)) {
				return Match{Category: r.Category, Rule: i, Keyword: kw}
			}
		}
	}
	if strings.Contains(hay, "loop") {
		return Match{Category: LoopsFallback, Rule: -1, Keyword: "loop"}
	}
	return Match{Category: Unsorted, Rule: -1}
}

// Classify runs the default rule table.
func Classify(name string, ancestors []string) CategoryPath {
	return defaultClassifier.Classify(name, ancestors)
}

var defaultClassifier = New(nil)

func haystack(name string, ancestors []string) string {
	parts := make([]string, 0, len(ancestors)+1)
	parts = append(parts, name)
	for _, a := range ancestors {
		if a != "" {
			parts = append(parts, a)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
