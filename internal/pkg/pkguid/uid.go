package pkguid

// StringID generates unique string identifiers: UUIDv7 for users, blogs and
// correlation IDs, ULID for stored upload names.
type StringID interface {
	Generate() string
}

// NumberID generates unique numeric identifiers, used for category IDs.
type NumberID interface {
	Generate() int64
}

var (
	_ StringID = (*UUID)(nil)
	_ StringID = (*ULID)(nil)
	_ NumberID = (*Snowflake)(nil)
)
