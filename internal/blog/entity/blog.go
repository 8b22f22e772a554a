package entity

type Blog struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	CategoryID string
	// Image is the stored upload name, empty when the post has none.
	Image     string
	CreatedAt int64
	UpdatedAt int64
}

type Filter struct {
	AuthorID   string
	CategoryID string
}
