package entity

// ImageRemovedEvent asks the cleanup consumer to delete the upload of a
// deleted blog post.
type ImageRemovedEvent struct {
	EventID string
	BlogID  string
	Image   string
}
