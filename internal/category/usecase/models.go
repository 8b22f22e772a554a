package usecase

type CreateInput struct {
	Name        string
	Description string
}

// UpdateInput keeps the current value of any nil field.
type UpdateInput struct {
	Name        *string
	Description *string
}
