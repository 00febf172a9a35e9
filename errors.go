package cerrgen

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"   // a field holds a value of the wrong type
	CodeRequired      = "required"       // a structurally required field is absent
	CodeParseError    = "parse_error"    // the document or an offset cannot be parsed
	CodeEmptyDocument = "empty_document" // the root key holds no domains
)

// Issue represents a single schema violation found at the load boundary.
type Issue struct {
	Path    string // JSON Pointer into the document (for example: /OS_Error_t/2/members/0/name).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error (e.g. a numeric parse failure).
}

// Issues is a collection of schema violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /OS_Error_t/0/members/1/name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
