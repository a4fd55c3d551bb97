package error

// GenericError is implemented by every application error that knows
// how to present itself over HTTP.
type GenericError interface {
	error
	ErrCode() string
	StatusCode() int
}
