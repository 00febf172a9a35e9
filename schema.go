package cerrgen

// Document is the validated form of an error-code schema: an ordered sequence
// of error domains. Domain order and member order are significant; they
// determine both the emitted layout and the numeric assignment.
type Document struct {
	Domains []ErrorDomain
}

// ErrorDomain groups related error codes that share a numbering base.
type ErrorDomain struct {
	Description string
	Offset      int
	Members     []DomainMember
}

// DomainMember is one named error code within a domain. Name uniqueness across
// the whole document is the input's responsibility; no cross-domain collision
// check is performed here.
type DomainMember struct {
	Name        string
	Description string
}

// Value returns the numeric value of the member at index i. Members count
// downward from the domain offset, so the first-listed member receives the
// largest value in the domain's range.
func (d ErrorDomain) Value(i int) int { return d.Offset - i }

// Len reports the total number of members across all domains.
func (doc Document) Len() int {
	n := 0
	for _, d := range doc.Domains {
		n += len(d.Members)
	}
	return n
}
