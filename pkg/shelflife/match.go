package shelflife

import "strings"

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// matchBidirectional reports whether the keyword matches the item name in
// either direction, so "grape" matches "grapes" and "grapes" matches "grape".
// Used for the fresh-food table only.
func matchBidirectional(name, keyword string) bool {
	return strings.Contains(name, keyword) || strings.Contains(keyword, name)
}

// findRecord scans Records in declaration order and returns the first record
// with a bidirectionally matching keyword.
func findRecord(name string) (*Record, bool) {
	if name == "" {
		return nil, false
	}
	for i := range Records {
		for _, kw := range Records[i].Keywords {
			if matchBidirectional(name, kw) {
				return &Records[i], true
			}
		}
	}
	return nil, false
}

// findPackagedRule scans PackagedRules in declaration order using plain
// substring containment, not the bidirectional test.
func findPackagedRule(name string) (*PackagedRule, bool) {
	if name == "" {
		return nil, false
	}
	for i := range PackagedRules {
		for _, kw := range PackagedRules[i].Keywords {
			if strings.Contains(name, kw) {
				return &PackagedRules[i], true
			}
		}
	}
	return nil, false
}
