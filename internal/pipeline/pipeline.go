package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pdfchat/internal/extract"
	"pdfchat/internal/models"
)

const DefaultProviderTimeout = 60 * time.Second

const promptTemplate = "Based on the following PDF content:\n\n%s\n\nPlease answer the question: %s"

// AnswerClient is the provider-facing side of the pipeline; ai.Service
// satisfies it.
type AnswerClient interface {
	Answer(ctx context.Context, prompt string) ([]models.ContentBlock, error)
}

// Pipeline runs one upload-and-ask request: validate, extract, prompt, call
// the provider, and release the temp file. It holds no per-request state, so
// one instance serves all requests concurrently.
type Pipeline struct {
	extractor extract.Extractor
	client    AnswerClient
	timeout   time.Duration

	removeFile func(string) error
}

func New(extractor extract.Extractor, client AnswerClient, timeout time.Duration) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Pipeline{
		extractor:  extractor,
		client:     client,
		timeout:    timeout,
		removeFile: os.Remove,
	}
}

// Run processes req and returns the completion's content blocks. Whatever
// happens, the temp file referenced by req is released exactly once before
// Run returns; a failed removal is logged and never changes the result.
func (p *Pipeline) Run(ctx context.Context, req *models.UploadRequest) ([]models.ContentBlock, error) {
	defer p.release(req)

	if req == nil || req.FilePath == "" || strings.TrimSpace(req.Question) == "" {
		return nil, ErrMissingInput
	}

	text, err := p.extractor.ExtractFile(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}
	if text == "" {
		return nil, ErrNoTextExtracted
	}

	prompt := buildPrompt(text, req.Question)

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	blocks, err := p.client.Answer(callCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	return blocks, nil
}

func buildPrompt(text, question string) string {
	return fmt.Sprintf(promptTemplate, text, question)
}

func (p *Pipeline) release(req *models.UploadRequest) {
	if req == nil || req.FilePath == "" {
		return
	}
	if err := p.removeFile(req.FilePath); err != nil && !os.IsNotExist(err) {
		log.Printf("remove temp file %s failed: %v", req.FilePath, err)
	}
}
