package entity

type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt int64
	UpdatedAt int64
}
