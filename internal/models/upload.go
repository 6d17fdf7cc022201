package models

// UploadRequest carries one upload-and-ask request through the pipeline.
// FilePath points at the temporary copy of the uploaded PDF; the pipeline
// owns that file from creation to deletion.
type UploadRequest struct {
	FilePath string
	FileName string
	Size     int64
	Question string
}
