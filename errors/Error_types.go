package errors

// ERR is the numeric error code carried by every Error.
type ERR int32

const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_INVALID_HEX      ERR = 2
	ERR_EMPTY_INPUT      ERR = 3
	ERR_PROCESSING       ERR = 4
	ERR_CONFIGURATION    ERR = 5
	ERR_NOT_FOUND        ERR = 6
	ERR_RPC              ERR = 7
	ERR_SERVICE_ERROR    ERR = 8
	ERR_BLOCK_INVALID    ERR = 9
)

var ERR_name = map[int32]string{
	0: "ERR_UNKNOWN",
	1: "ERR_INVALID_ARGUMENT",
	2: "ERR_INVALID_HEX",
	3: "ERR_EMPTY_INPUT",
	4: "ERR_PROCESSING",
	5: "ERR_CONFIGURATION",
	6: "ERR_NOT_FOUND",
	7: "ERR_RPC",
	8: "ERR_SERVICE_ERROR",
	9: "ERR_BLOCK_INVALID",
}

func (e ERR) String() string {
	if name, ok := ERR_name[int32(e)]; ok {
		return name
	}

	return ERR_name[int32(ERR_UNKNOWN)]
}

var (
	ErrUnknown         = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrInvalidHex      = New(ERR_INVALID_HEX, "invalid hex")
	ErrEmptyInput      = New(ERR_EMPTY_INPUT, "empty input")
	ErrProcessing      = New(ERR_PROCESSING, "error processing")
	ErrConfiguration   = New(ERR_CONFIGURATION, "configuration error")
	ErrNotFound        = New(ERR_NOT_FOUND, "not found")
	ErrRPC             = New(ERR_RPC, "rpc error")
	ErrServiceError    = New(ERR_SERVICE_ERROR, "service error")
	ErrBlockInvalid    = New(ERR_BLOCK_INVALID, "block invalid")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewInvalidHexError(message string, params ...interface{}) error {
	return New(ERR_INVALID_HEX, message, params...)
}
func NewEmptyInputError(message string, params ...interface{}) error {
	return New(ERR_EMPTY_INPUT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewRPCError(message string, params ...interface{}) error {
	return New(ERR_RPC, message, params...)
}
func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
func NewBlockInvalidError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_INVALID, message, params...)
}
