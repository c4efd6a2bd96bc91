package domain

// Edge is an undirected weighted connection between two campus locations as
// stored in the backing table.
type Edge struct {
	Source      string  `json:"source" yaml:"source"`
	Destination string  `json:"destination" yaml:"destination"`
	Distance    float64 `json:"distance" yaml:"distance"`
}
