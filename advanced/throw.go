package advanced

import "github.com/pkg/errors"

var (
	// The path does not begin with an absolute moveto, or could not be parsed.
	ErrMalformedPath = errors.New("malformed path")
	// A moveto appeared after the first command.
	ErrSubpathsUnsupported = errors.New("subpaths not supported")
	// A command other than an absolute M, L, H, V or C.
	ErrUnsupportedCommand = errors.New("unsupported path command")
	ErrInvalidOptions     = errors.New("invalid options")
	// The top and bottom paths were sampled into different numbers of points.
	ErrPointCountMismatch = errors.New("top and bottom point counts differ")
	// An area with no cross-sections reached the triangulator.
	ErrEmptyArea = errors.New("area has no lines")
	// A run of points or lines contained the other kind of primitive.
	ErrUnexpectedPrimitive = errors.New("unexpected primitive")
)

// Threading errors through every stage for conditions that can only arise from
// a bug (or from a caller handing mismatched inputs to a low level function)
// would clutter the pipeline. Those conditions panic with a meshError instead,
// and GenMesh recovers them into ordinary errors.
type meshError struct {
	error
}

func (e meshError) Unwrap() error {
	return e.error
}

// Panic with a meshError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(meshError{errors.Wrapf(cause, format, args...)})
}

// HandleMeshPanicRecover converts a value obtained from recover() into an
// error if it was raised by fatalf. Any other panic is re-raised.
func HandleMeshPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(meshError); ok {
		return err.error
	}
	panic(r)
}
