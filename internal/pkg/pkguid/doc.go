// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses these interfaces to avoid hard-coding a specific UID
// strategy:
//   - UUIDv7 strings for users, blogs and correlation IDs.
//   - Snowflake numbers for categories.
//   - ULID strings for stored upload file names, so they sort by creation time.
package pkguid
