package domain

// State is a read-only reference-table entry.
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// City is a read-only reference-table entry, scoped to a state.
type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StateID string `json:"state_id"`
}
