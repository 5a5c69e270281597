package constants

// Status is the canonical lifecycle status for rows in resumes.
type Status string

// Stable values (store these exact strings in DB).
const (
	StatusPending   Status = "PENDING"   // initial, set at creation
	StatusReviewing Status = "REVIEWING" // under review
	StatusApproved  Status = "APPROVED"  // terminal outcome
	StatusRejected  Status = "REJECTED"  // terminal outcome
)

// Statuses holds the allowed values for the status field in Resume.
var Statuses = []string{
	string(StatusPending),
	string(StatusReviewing),
	string(StatusApproved),
	string(StatusRejected),
}

// DefaultTransitions is the allowed transition graph. PENDING is the sole
// entry state; APPROVED and REJECTED have no outgoing edges.
var DefaultTransitions = map[Status][]Status{
	StatusPending:   {StatusReviewing},
	StatusReviewing: {StatusApproved, StatusRejected},
}

// ParseStatus returns the Status for s, or false when s is not a known value.
func ParseStatus(s string) (Status, bool) {
	for _, v := range Statuses {
		if v == s {
			return Status(s), true
		}
	}
	return "", false
}

// CanTransition reports whether from -> to is an edge in the given graph.
func CanTransition(graph map[Status][]Status, from, to Status) bool {
	for _, next := range graph[from] {
		if next == to {
			return true
		}
	}
	return false
}
