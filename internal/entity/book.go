package entity

// Book is a catalog record keyed by ISBN. Reviews maps a reviewing
// username to that user's review text; at most one review per username.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}
