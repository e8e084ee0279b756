// Package command routes validated, confirmed extractions to entity
// handlers. The dispatch table over entity and operation pairs is built at
// startup, so an unmatched pair is a lookup miss rather than a fallthrough.
package command

import (
	"errors"
	"fmt"
)

// ErrorKind classifies dispatch failures so callers can word their reply to
// the user appropriately.
type ErrorKind string

const (
	// KindUnknownEntity means the entity name itself is not recognized.
	KindUnknownEntity ErrorKind = "unknown_entity"
	// KindUnknownOperation means the entity exists but does not support the operation.
	KindUnknownOperation ErrorKind = "unknown_operation"
	// KindMissingRequiredField means a required field was absent or empty.
	KindMissingRequiredField ErrorKind = "missing_required_field"
	// KindEntityNotFound means a referenced record could not be resolved.
	KindEntityNotFound ErrorKind = "entity_not_found"
	// KindAmbiguousTarget means a reference matched more than one record.
	KindAmbiguousTarget ErrorKind = "ambiguous_target"
	// KindDuplicateProfile means the customer already has a profile.
	KindDuplicateProfile ErrorKind = "duplicate_profile"
	// KindInvalidInput means a field value failed validation.
	KindInvalidInput ErrorKind = "invalid_input"
)

// Error is the typed failure every dispatch path returns. It is caught at
// the command surface and rendered as a failed response, never propagated
// past that boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError extracts a *Error from err, or nil.
func AsError(err error) *Error {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr
	}
	return nil
}

// NewUnknownEntity reports an entity name outside the dispatch table.
func NewUnknownEntity(entity string) *Error {
	return &Error{
		Kind:    KindUnknownEntity,
		Message: fmt.Sprintf("I don't know that type of thing: %q", entity),
	}
}

// NewUnknownOperation reports an operation the entity does not support.
func NewUnknownOperation(entity, operation string) *Error {
	return &Error{
		Kind:    KindUnknownOperation,
		Message: fmt.Sprintf("I don't know how to %s a %s", operation, entity),
	}
}

// NewMissingRequiredField names the field that was absent or empty.
func NewMissingRequiredField(field string) *Error {
	return &Error{
		Kind:    KindMissingRequiredField,
		Message: fmt.Sprintf("missing required field %q", field),
	}
}

// NewEntityNotFound names the reference that failed to resolve.
func NewEntityNotFound(entity, name string) *Error {
	return &Error{
		Kind:    KindEntityNotFound,
		Message: fmt.Sprintf("could not find a %s named %q", entity, name),
	}
}

// NewAmbiguousTarget asks the user for disambiguating detail.
func NewAmbiguousTarget(entity, name string, count int) *Error {
	return &Error{
		Kind:    KindAmbiguousTarget,
		Message: fmt.Sprintf("%d %ss match %q, please be more specific", count, entity, name),
	}
}

// NewDuplicateProfile suggests updating the existing profile instead.
func NewDuplicateProfile(customerName string) *Error {
	return &Error{
		Kind:    KindDuplicateProfile,
		Message: fmt.Sprintf("%s already has a profile, try updating it instead", customerName),
	}
}

// NewInvalidInput reports a field value that failed validation.
func NewInvalidInput(message string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: message,
	}
}
