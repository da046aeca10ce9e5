// Package aggregate implements the batch aggregations over an in-memory
// event log. Every function is pure: it takes the log plus scalar
// parameters, reads no clocks and mutates no shared state, so calls are
// reentrant and idempotent. The two wall-clock-dependent aggregations
// take the current instant as an explicit argument.
package aggregate

// ratio divides num by den, returning exactly 0 when den is 0. All rates
// in this package go through it so no NaN or Inf ever surfaces.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// groupKeys collects distinct keys in first-seen order alongside the
// grouped values. Map iteration order alone is not deterministic, and
// several aggregations promise first-encountered ordering.
func groupKeys[T any](items []T, key func(T) string) ([]string, map[string][]T) {
	keys := make([]string, 0)
	groups := make(map[string][]T)
	for _, it := range items {
		k := key(it)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], it)
	}
	return keys, groups
}

// distinct returns unique non-empty values in first-seen order.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
