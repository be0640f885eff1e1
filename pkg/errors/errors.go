package errors

import "errors"

var (
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrMissingChoices    = errors.New("missing choices")
	ErrInvalidCount      = errors.New("invalid count")
	ErrMultipleValues    = errors.New("multiple values not supported")
	ErrInvalidDefault    = errors.New("invalid default")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnexpectedKind    = errors.New("unexpected kind")
	ErrUnknownOption     = errors.New("unknown option")
	ErrMissingValue      = errors.New("missing value")
	ErrInvalidBinding    = errors.New("invalid binding")
	ErrMalformedDSN      = errors.New("malformed dsn")
	ErrUnsupportedConfig = errors.New("unsupported config format")
)
