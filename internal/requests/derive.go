package requests

// Derived attributes are pure functions of persisted fields, recomputed on
// every read and never stored (bson:"-" on the derived struct fields). Each
// request type parameterizes the helpers below with its own constant tables.

// estimateBudget maps a budget-range label to its representative midpoint.
// Unknown labels map to 0.
func estimateBudget(table map[string]int, budgetRange string) int {
	return table[budgetRange]
}

// isHighValue reports whether the selected range is one of the type's top
// tiers.
func isHighValue(highTiers []string, budgetRange string) bool {
	return oneOf(budgetRange, highTiers...)
}

// isUrgent is true for High/Critical urgency or the ASAP timeline sentinel.
func isUrgent(urgencyLevel, timeline string) bool {
	return urgencyLevel == UrgencyHigh || urgencyLevel == UrgencyCritical || timeline == TimelineASAP
}

// exceedsThreshold flags a multi-select whose option count passes the type's
// complexity threshold (strictly greater).
func exceedsThreshold(selected []string, threshold int) bool {
	return len(selected) > threshold
}

func oneOf(value string, set ...string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
