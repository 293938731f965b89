package result

import "strings"

// CategoryError tags the primary entry of an ErrorDetail; later entries are
// supplementary annotations under caller-chosen categories.
const CategoryError = "error"

// Entry is one (category, message) pair of an ErrorDetail.
type Entry struct {
	Category string
	Message  string
}

// ErrorDetail is an ordered sequence of entries. Order is insertion order and
// is significant: the first entry is the primary error.
type ErrorDetail []Entry

// StringResult is the conventional specialization with ErrorDetail failures.
type StringResult[S any] = Result[S, ErrorDetail]

func EmptyErrorDetail() ErrorDetail {
	return ErrorDetail{}
}

func ErrorDetailWith(message string) ErrorDetail {
	return ErrorDetail{{Category: CategoryError, Message: message}}
}

// Add returns a new detail with the pair appended; the receiver is untouched.
func (d ErrorDetail) Add(category, message string) ErrorDetail {
	out := make(ErrorDetail, len(d), len(d)+1)
	copy(out, d)
	return append(out, Entry{Category: category, Message: message})
}

func (d ErrorDetail) String() string {
	parts := make([]string, 0, len(d))
	for _, e := range d {
		parts = append(parts, e.Category+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Annotate appends a pair to a failure's detail, yielding a new failure with
// the original's metadata. A success is returned unchanged.
func Annotate[S any](r StringResult[S], category, message string) StringResult[S] {
	if r.IsSuccess() {
		return r
	}

	annotated := FailFrom[S, S](r)
	annotated.err = r.Err().Add(category, message)
	return annotated
}

// DetailProducer is the ambient producer for StringResult chains: a captured
// panic becomes a single-entry detail from its message.
func DetailProducer(err error) ErrorDetail {
	return ErrorDetailWith(err.Error())
}
