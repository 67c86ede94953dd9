package annotate

import "fmt"

// ResourceKind classifies rendering failures so a batch caller can report
// them distinctly.
type ResourceKind int

const (
	// SourceMissing means the input screenshot does not exist.
	SourceMissing ResourceKind = iota
	// SourceUndecodable means the input exists but is not a decodable image.
	SourceUndecodable
	// DestUnwritable means the annotated output could not be written.
	DestUnwritable
)

func (k ResourceKind) String() string {
	switch k {
	case SourceMissing:
		return "source missing"
	case SourceUndecodable:
		return "source undecodable"
	case DestUnwritable:
		return "destination unwritable"
	}
	return "unknown"
}

// ResourceError reports a failure to read the source screenshot or write
// the annotated output.
type ResourceError struct {
	Path string
	Kind ResourceKind
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
