package event

import "strings"

// Topic represents a hierarchical event type using dot notation.
// Examples: "drawing.point.added", "history.undo", "config.reloaded"
type Topic string

// Wildcard constants for pattern matching.
const (
	// WildcardSingle matches exactly one segment.
	WildcardSingle = "*"

	// WildcardMulti matches zero or more segments.
	WildcardMulti = "**"

	// Separator is the character used to separate topic segments.
	Separator = "."
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// Parent returns the parent topic by removing the last segment.
// Returns an empty topic if there is no parent.
//
// Example: "drawing.point.added" -> "drawing.point"
func (t Topic) Parent() Topic {
	s := string(t)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return ""
	}
	return Topic(s[:idx])
}

// Base returns the last segment of the topic.
//
// Example: "drawing.point.added" -> "added"
func (t Topic) Base() string {
	s := string(t)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// IsPattern returns true if the topic contains wildcard segments.
func (t Topic) IsPattern() bool {
	return strings.Contains(string(t), WildcardSingle)
}

// IsValid returns true if the topic is non-empty with no empty segments.
func (t Topic) IsValid() bool {
	s := string(t)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, Separator) || strings.HasSuffix(s, Separator) {
		return false
	}
	return !strings.Contains(s, Separator+Separator)
}

// Match reports whether the concrete topic t matches the given pattern.
// The pattern may contain "*" (one segment) and "**" (zero or more
// segments); t itself must be concrete.
func (t Topic) Match(pattern Topic) bool {
	return matchSegments(pattern.Segments(), t.Segments())
}

// matchSegments matches pattern segments against topic segments.
func matchSegments(pattern, topic []string) bool {
	if len(pattern) == 0 {
		return len(topic) == 0
	}

	if pattern[0] == WildcardMulti {
		// "**" swallows zero or more leading segments.
		for i := 0; i <= len(topic); i++ {
			if matchSegments(pattern[1:], topic[i:]) {
				return true
			}
		}
		return false
	}

	if len(topic) == 0 {
		return false
	}
	if pattern[0] != WildcardSingle && pattern[0] != topic[0] {
		return false
	}
	return matchSegments(pattern[1:], topic[1:])
}
