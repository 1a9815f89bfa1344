package fbwire

import "fmt"

// ContractError reports a purely local violation of this package's usage
// contract: an unsupported conversion, an unencodable parameter kind, a
// column index past the descriptor's slot count, or an operation on a
// closed resource. A ContractError indicates a bug in the calling code and
// is never retryable.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string {
	return e.msg
}

func contractErrf(format string, args ...any) *ContractError {
	return &ContractError{msg: fmt.Sprintf(format, args...)}
}

func invalidConversion(from Type, to string) *ContractError {
	return contractErrf("invalid conversion from type %s to %s", from, to)
}

// EngineError wraps a failure reported by the underlying engine. The
// message is the diagnostic-formatted text; the original cause is reachable
// through Unwrap. Engine errors are never retried by this package.
type EngineError struct {
	msg   string
	cause error
}

func (e *EngineError) Error() string {
	return e.msg
}

func (e *EngineError) Unwrap() error {
	return e.cause
}

// WrapEngineError builds an EngineError from an engine failure, formatting
// the message through the diagnostic formatter when one is supplied.
func WrapEngineError(f DiagnosticFormatter, cause error) *EngineError {
	msg := cause.Error()
	if f != nil {
		msg = f.Format(cause)
	}
	return &EngineError{msg: msg, cause: cause}
}
