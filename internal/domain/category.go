package domain

// Category groups posts. Categories are managed through the admin
// routes only; deleting one cascades to its posts.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
