package binpack

import (
	"strconv"
	"strings"
)

// tagBin is the struct tag controlling record layout.
// Use it to exclude fields or to size variable-typed ones:
//
//	Internal string `bin:"-"`
//	Nonce    []byte `bin:"size=12"`
const tagBin = "bin"

const (
	tagSkip       = "-"
	tagSizePrefix = "size="
)

// parseBinTag interprets a bin tag value for the named field. It reports
// whether the field is skipped, or the fixed size declared for it.
func parseBinTag(field, val string) (skip bool, size int, err error) {
	if val == tagSkip {
		return true, 0, nil
	}
	if rest, ok := strings.CutPrefix(val, tagSizePrefix); ok {
		n, convErr := strconv.Atoi(rest)
		if convErr != nil || n <= 0 {
			return false, 0, newConfigError(ErrInvalidTag, field, val)
		}
		return false, n, nil
	}
	return false, 0, newConfigError(ErrInvalidTag, field, val)
}
