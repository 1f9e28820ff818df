// Package rerr defines the closed set of error kinds produced by the
// anonymizer core and a wrapping error type that carries one of them.
package rerr

import (
	"errors"
	"fmt"
)

// Kind is a closed enum of error kinds surfaced by the core. These are
// stable strings, not Go type names, so they can be logged, compared, and
// reported on a response channel without reflection.
type Kind string

const (
	InvalidDICOM          Kind = "INVALID_DICOM"
	DICOMReadError        Kind = "DICOM_READ_ERROR"
	MissingAttributes     Kind = "MISSING_ATTRIBUTES"
	InvalidStorageClass   Kind = "INVALID_STORAGE_CLASS"
	CapturePHIError       Kind = "CAPTURE_PHI_ERROR"
	StorageError          Kind = "STORAGE_ERROR"
	AlreadyPresent        Kind = "ALREADY_PRESENT"
	CapacityExceeded      Kind = "CAPACITY_EXCEEDED"
	ModelVersionMismatch  Kind = "MODEL_VERSION_MISMATCH"
	NetworkTimeout        Kind = "NETWORK_TIMEOUT"
	AssociationRejected   Kind = "ASSOCIATION_REJECTED"
	PeerAbort             Kind = "PEER_ABORT"
	Cancelled             Kind = "CANCELLED"
	CredentialsExpired    Kind = "CREDENTIALS_EXPIRED"
)

// QuarantineCategories are the sub-directory names failures route to.
// Only the first six error kinds above quarantine source bytes.
var QuarantineCategories = map[Kind]string{
	InvalidDICOM:        "Invalid_DICOM",
	DICOMReadError:      "DICOM_Read_Error",
	MissingAttributes:   "Missing_Attributes",
	InvalidStorageClass: "Invalid_Storage_Class",
	CapturePHIError:     "Capture_PHI_Error",
	StorageError:        "Storage_Error",
}

// Error wraps an underlying cause with a Kind so callers can errors.As to
// *Error and branch on Kind without string matching on Error().
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an *Error around an existing cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
