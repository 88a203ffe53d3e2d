package id

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
var multiDash = regexp.MustCompile(`-+`)

// Fingerprint returns a stable 16-hex-digit xxhash of v's JSON encoding.
// Equal specifications log the same fingerprint without logging their contents.
func Fingerprint(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// PlanTag builds <kind>-<fingerprint>, e.g. "workout-1f0c...".
func PlanTag(kind string, v any) string {
	k := strings.ToLower(kind)
	k = nonAlnum.ReplaceAllString(k, "-")
	k = multiDash.ReplaceAllString(k, "-")
	k = strings.Trim(k, "-")
	return k + "-" + Fingerprint(v)
}
