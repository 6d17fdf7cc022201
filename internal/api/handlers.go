package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"pdfchat/internal/models"
	"pdfchat/internal/pipeline"
)

const DefaultMaxUploadBytes = 10 << 20 // 10 MB

// Fixed wire messages; internal error detail stays in the logs.
const (
	msgMissingInput = "Missing PDF file or question"
	msgNoText       = "No text extracted from the PDF"
	msgFileTooLarge = "file too large"
	msgInternal     = "Something went wrong. Please try again."
)

// Asker runs one upload-and-ask request; pipeline.Pipeline satisfies it.
type Asker interface {
	Run(ctx context.Context, req *models.UploadRequest) ([]models.ContentBlock, error)
}

// Handler wires the HTTP route to the pipeline and owns writing uploads into
// the temp dir. From the moment a file is saved, the pipeline owns deleting it.
type Handler struct {
	pipeline       Asker
	uploadDir      string
	maxUploadBytes int64
}

// NewHandler constructs a Handler instance.
func NewHandler(p Asker, uploadDir string, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		pipeline:       p,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/upload", h.uploadAndAsk)
}

func (h *Handler) uploadAndAsk(c *gin.Context) {
	req := &models.UploadRequest{Question: c.PostForm("question")}

	file, err := c.FormFile("pdf")
	if err == nil {
		if file.Size > h.maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgFileTooLarge})
			return
		}
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			log.Printf("create upload dir %s failed: %v", h.uploadDir, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		dest := filepath.Join(h.uploadDir, uniqueName(file.Filename))
		if err := c.SaveUploadedFile(file, dest); err != nil {
			log.Printf("save uploaded file failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		req.FilePath = dest
		req.FileName = filepath.Base(file.Filename)
		req.Size = file.Size
	}

	blocks, err := h.pipeline.Run(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": blocks})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	log.Printf("upload request failed: %v", err)
	switch {
	case errors.Is(err, pipeline.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
	case errors.Is(err, pipeline.ErrNoTextExtracted):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoText})
	default:
		// ExtractionFailure, ProviderFailure, ProviderTimeout: all internal.
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

// uniqueName keys each upload by arrival time so concurrent requests never
// share a path.
func uniqueName(filename string) string {
	base := filepath.Base(filename)
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)
}
