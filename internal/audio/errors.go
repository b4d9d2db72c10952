package audio

import "fmt"

// Operation represents the type of audio operation
type Operation string

const (
	OpEncodeFLAC  Operation = "encode_flac"
	OpEncodeWAV   Operation = "encode_wav"
	OpWriteOutput Operation = "write_output"
)

// EncodeError represents a structured audio encoding error
type EncodeError struct {
	Op         Operation
	FilePath   string
	Underlying error
}

func (e *EncodeError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("audio %s failed for %s: %v", e.Op, e.FilePath, e.Underlying)
	}
	return fmt.Sprintf("audio %s failed for %s", e.Op, e.FilePath)
}

func (e *EncodeError) Unwrap() error {
	return e.Underlying
}

// NewEncodeError creates an error for encoder failures
func NewEncodeError(op Operation, filePath string, err error) *EncodeError {
	return &EncodeError{
		Op:         op,
		FilePath:   filePath,
		Underlying: err,
	}
}
