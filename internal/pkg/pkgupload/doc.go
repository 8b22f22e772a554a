// Package pkgupload stores uploaded files in the public uploads directory.
//
// It enforces the per-file size limit and reports an oversized file with the
// LIMIT_FILE_SIZE classifier code, leaving the status decision to the router.
package pkgupload
