package errors

import "fmt"

var (
	// ErrNoRecognizedFormat is the single fatal parse error: no timestamp
	// header was recognized anywhere in a non-blank input.
	ErrNoRecognizedFormat = fmt.Errorf("no recognized timestamp header in transcript")
	ErrPayloadTooLarge    = fmt.Errorf("transcript payload exceeds the configured limit")
	ErrNotPlainText       = fmt.Errorf("payload is not plain text")
	ErrEmptyDictionary    = fmt.Errorf("no words have been found")
)
