// errors.go: structured error taxonomy for dictionary operations.
//
// Mutating operations return a Status for the ordinary OK/OK_REPLACED
// outcomes and a distinct error for everything else, instead of reusing
// one sentinel integer for multiple meanings (see DESIGN.md, "sentinel
// aliasing").
package dictionary

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Status is the outcome of a mutating Dictionary operation that does not
// fail. Lookup misses are never represented as a Status; they are plain
// booleans, since a miss is a normal return, not an error.
type Status int

const (
	// OK means a new entry was appended.
	OK Status = iota
	// OKReplaced means an existing key's value was overwritten.
	OKReplaced
	// OKUnchanged means the key was already present with an equal value,
	// so Insert was a no-op. Kept distinct from OKReplaced rather than
	// folded into a single "already present" status, and distinct from
	// any error, because it is neither a mutation nor a failure.
	OKUnchanged
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case OKReplaced:
		return "OK_REPLACED"
	case OKUnchanged:
		return "OK_UNCHANGED"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Error codes for Dictionary operations.
const (
	ErrCodeInvalidInput         errors.ErrorCode = "DICT_INVALID_INPUT"
	ErrCodeKeyNotFound          errors.ErrorCode = "DICT_KEY_NOT_FOUND"
	ErrCodeAllocationFailed     errors.ErrorCode = "DICT_ALLOCATION_FAILED"
	ErrCodeConsistencyViolation errors.ErrorCode = "DICT_CONSISTENCY_VIOLATION"
	ErrCodeConcurrentMutation   errors.ErrorCode = "DICT_CONCURRENT_MUTATION"
	ErrCodeDictionaryNil        errors.ErrorCode = "DICT_IS_NULL"
)

const (
	msgInvalidInput         = "invalid input"
	msgKeyNotFound          = "key not found"
	msgAllocationFailed     = "allocation failed while growing the table"
	msgConsistencyViolation = "internal consistency invariant violated"
	msgConcurrentMutation   = "dictionary mutated during traversal"
	msgDictionaryNil        = "dictionary argument is nil"
)

// NewErrInvalidInput reports an INVALID_INPUT outcome; NewFromSlices raises
// it when keys and values differ in length. operation describes the call.
func NewErrInvalidInput(operation string) error {
	return errors.NewWithField(ErrCodeInvalidInput, msgInvalidInput, "operation", operation)
}

// NewErrKeyNotFound reports a structural miss on delete: the key was
// not present.
func NewErrKeyNotFound(key any) error {
	return errors.NewWithField(ErrCodeKeyNotFound, msgKeyNotFound, "key", key)
}

// NewErrAllocationFailed reports a failed grow/resize. The Dictionary's
// invariants must hold both before and after this error is returned; it is
// only raised before any state has been mutated for the current operation.
func NewErrAllocationFailed(cause error, requestedCapacity int) error {
	return errors.Wrap(cause, ErrCodeAllocationFailed, msgAllocationFailed).
		WithContext("requested_capacity", requestedCapacity)
}

// NewErrConsistencyViolation reports a programmer-error-class invariant
// failure detected by an internal check.
func NewErrConsistencyViolation(detail string) error {
	return errors.NewWithField(ErrCodeConsistencyViolation, msgConsistencyViolation, "detail", detail)
}

// NewErrConcurrentMutation reports that Update observed the source
// dictionary's active count change mid-walk.
func NewErrConcurrentMutation(before, during int) error {
	return errors.NewWithContext(ErrCodeConcurrentMutation, msgConcurrentMutation, map[string]interface{}{
		"active_count_before": before,
		"active_count_during": during,
	})
}

// NewErrDictionaryNil reports that a nil *Dictionary was passed in as an
// argument (Update's other, Merge's a or b). operation names the call.
func NewErrDictionaryNil(operation string) error {
	return errors.NewWithField(ErrCodeDictionaryNil, msgDictionaryNil, "operation", operation)
}

// IsDictionaryNil reports whether err is a nil-dictionary-argument error.
func IsDictionaryNil(err error) bool { return errors.HasCode(err, ErrCodeDictionaryNil) }

// IsInvalidInput reports whether err is an INVALID_INPUT error.
func IsInvalidInput(err error) bool { return errors.HasCode(err, ErrCodeInvalidInput) }

// IsKeyNotFound reports whether err is a key-not-found delete error.
func IsKeyNotFound(err error) bool { return errors.HasCode(err, ErrCodeKeyNotFound) }

// IsAllocationFailed reports whether err is an allocation-failure error.
func IsAllocationFailed(err error) bool { return errors.HasCode(err, ErrCodeAllocationFailed) }

// IsConsistencyViolation reports whether err is an internal consistency error.
func IsConsistencyViolation(err error) bool {
	return errors.HasCode(err, ErrCodeConsistencyViolation)
}

// IsConcurrentMutation reports whether err was raised because a
// dictionary was mutated during Update's traversal.
func IsConcurrentMutation(err error) bool {
	return errors.HasCode(err, ErrCodeConcurrentMutation)
}

// ErrorCode extracts the structured error code from err, or "" if err does
// not carry one.
func ErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
