package services

// Status is the outcome of a mutating service call. It replaces the old
// success/notFound flag pair with explicit variants.
type Status int

const (
	StatusOK Status = iota
	StatusInvalid
	StatusNotFound
)
