package usecase

type CreateInput struct {
	Name  string
	Email string
}

// UpdateInput replaces only the non-empty fields.
type UpdateInput struct {
	Name  string
	Email string
}
