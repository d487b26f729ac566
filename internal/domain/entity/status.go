package entity

import "slices"

// transitionTable maps a status to the set of statuses it may move to.
// A status with no entry is terminal: the admin surface exposes no way out of it.
type transitionTable[S ~string] map[S][]S

// canTransition reports whether the table allows moving from one status to another.
func canTransition[S ~string](table transitionTable[S], from, to S) bool {
	return slices.Contains(table[from], to)
}

// isTerminal reports whether a status has no outgoing transitions.
func isTerminal[S ~string](table transitionTable[S], s S) bool {
	return len(table[s]) == 0
}
