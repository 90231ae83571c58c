package core

// ListState exposes the structural state of a list for observability.
type ListState struct {
	Name     string `json:"name" yaml:"name"`
	Length   int    `json:"length" yaml:"length"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Growths  int    `json:"growths" yaml:"growths"`
}
