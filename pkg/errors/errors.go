package apperrors

import "errors"

// Standardized broker errors
var (
	// ErrProtocolViolation signals a malformed message sequence, e.g. an
	// amount before init_info on a Produce stream.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrInvalidRequest signals semantically invalid field values on a
	// consumption request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAlreadyProducing signals a second concurrent Produce stream for
	// one production offer.
	ErrAlreadyProducing = errors.New("already producing")

	// ErrInvalidAmount signals a negative pool mutation.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnknownOffer signals a Produce stream for a resource the client
	// never offered.
	ErrUnknownOffer = errors.New("no matching production offer")

	// ErrMissingClientID signals a producer stream without client-id metadata.
	ErrMissingClientID = errors.New("missing client id")

	// ErrInternalInconsistency signals broker bookkeeping gone wrong, e.g.
	// a pool that would go negative. Contained per resource id.
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// ErrSessionClosed signals an operation on a session whose stream
	// already ended.
	ErrSessionClosed = errors.New("session closed")
)
