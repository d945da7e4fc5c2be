package service

import (
	"fmt"
	"sort"
)

// Validate checks every question group of the variant against the audience
// size. A group balances only when its bucket counts sum to exactly the
// denominator. Returns one message per failing group, in definition order,
// using the legacy wording so existing clients can render them unchanged.
// Response keys that do not belong to the variant are rejected as well.
func Validate(v Variant, counts map[string]int, denominator int) []string {
	def, ok := Lookup(v)
	if !ok {
		return []string{fmt.Sprintf("unknown survey variant %q", v)}
	}

	var errs []string

	known := make(map[string]struct{})
	for _, g := range def.Groups {
		total := 0
		for _, key := range g.Keys {
			known[key] = struct{}{}
			total += counts[key] // missing buckets count as zero
		}
		if total != denominator {
			errs = append(errs, fmt.Sprintf("%s: Total responses (%d) must equal %d %s",
				g.Label, total, denominator, def.Subject))
		}
	}

	var unknown []string
	for key := range counts {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, fmt.Sprintf("unknown response key %q for the %s survey", key, v))
	}

	return errs
}
