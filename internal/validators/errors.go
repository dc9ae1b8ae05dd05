package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingToken      = errors.New("sync token is missing")
	ErrEmptyDictType     = errors.New("dictionary type is empty")
	ErrDictTypeTooLong   = errors.New("dictionary type is too long")
	ErrEmptyCode         = errors.New("entry code is empty")
	ErrDuplicateCode     = errors.New("entry code is duplicated")
	ErrConflictingChange = errors.New("code is both upserted and removed")
	ErrEmptyTypes        = errors.New("types list cannot be empty")
	ErrEmptyEntries      = errors.New("entries list cannot be empty")
	ErrEmptyCodes        = errors.New("codes list cannot be empty")
	ErrLengthMismatch    = errors.New("length does not match the list size")
)
