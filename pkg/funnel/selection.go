package funnel

// SameSelection compares two supplier selections as sets: order and
// duplicates do not matter. The selection screen's "modified" flag is the
// negation against the default recommended subset.
func SameSelection(a, b []string) bool {
	as := toSet(a)
	bs := toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if !bs[id] {
			return false
		}
	}
	return true
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
