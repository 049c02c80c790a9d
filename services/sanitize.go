package services

import (
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag and script fragment from free-text fields.
// Applied to all string fields on every create and update path before the
// value reaches storage.
var strictPolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strictPolicy.Sanitize(s)
}
