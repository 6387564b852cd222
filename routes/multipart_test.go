package routes

import (
	"bytes"
	"mime/multipart"
	"testing"
)

// multipartImage writes a one-file form and returns its content type.
func multipartImage(t *testing.T, buf *bytes.Buffer) string {
	t.Helper()
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("image", "tea.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = part.Write([]byte("png"))
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return mw.FormDataContentType()
}
