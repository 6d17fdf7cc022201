package pipeline

import "errors"

// Each pipeline stage fails with exactly one of these kinds. The transport
// layer matches them exhaustively; anything it does not recognize is treated
// as an internal failure.
var (
	// ErrMissingInput: the request arrived without a PDF file or a question.
	ErrMissingInput = errors.New("missing pdf file or question")
	// ErrNoTextExtracted: the PDF parsed but carried no text, e.g. a
	// scanned image-only document. A client problem, not a server one.
	ErrNoTextExtracted = errors.New("no text extracted from the pdf")
	// ErrExtractionFailure: reading or parsing the uploaded file failed.
	ErrExtractionFailure = errors.New("pdf extraction failed")
	// ErrProviderFailure: the completion call failed on the provider side.
	ErrProviderFailure = errors.New("provider call failed")
	// ErrProviderTimeout: the completion call exceeded its deadline.
	ErrProviderTimeout = errors.New("provider call timed out")
)
