package domain

import "strings"

// SkillSet is the decoded form of the comma-delimited skills column: an
// unordered set with trimmed, case-insensitive members. Display order is
// first-seen order of the raw string. Matching logic must always go through
// this type; substring checks against the raw column cannot express
// multi-tag semantics.
type SkillSet struct {
	keys  map[string]struct{}
	order []string
}

// ParseSkillSet decodes a raw comma-delimited skills string. Blank entries
// and duplicates (case-insensitive) are dropped.
func ParseSkillSet(raw string) SkillSet {
	s := SkillSet{keys: make(map[string]struct{})}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := s.keys[key]; dup {
			continue
		}
		s.keys[key] = struct{}{}
		s.order = append(s.order, tag)
	}
	return s
}

func (s SkillSet) Empty() bool { return len(s.order) == 0 }

func (s SkillSet) Has(tag string) bool {
	_, ok := s.keys[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// HasAll reports whether every tag is present. Vacuously true for an empty
// tag list.
func (s SkillSet) HasAll(tags []string) bool {
	for _, t := range tags {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one tag is present. Vacuously true for an
// empty tag list, so an absent skills filter never excludes anyone.
func (s SkillSet) HasAny(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// List returns the members in first-seen order.
func (s SkillSet) List() []string {
	return append([]string(nil), s.order...)
}

// Encode re-joins the set into its stored delimited form.
func (s SkillSet) Encode() string {
	return strings.Join(s.order, ", ")
}
