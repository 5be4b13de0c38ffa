package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ymestates/realty/internal/api/dto"
	"github.com/ymestates/realty/internal/api/validation"
	"github.com/ymestates/realty/internal/storage"
)

const (
	maxUploadFiles    = 10
	maxUploadFileSize = 10 << 20 // 10 MB per file
)

type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts up to ten images in the "images" multipart field and
// returns the absolute URLs they are served from. Content type is sniffed
// from the bytes, not trusted from the part header.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxUploadFiles)*maxUploadFileSize+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Err("Invalid multipart form"))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, dto.Err("No images provided"))
		return
	}
	if len(files) > maxUploadFiles {
		writeJSON(w, http.StatusBadRequest, dto.Err(fmt.Sprintf("At most %d images per request", maxUploadFiles)))
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadFileSize {
			writeJSON(w, http.StatusBadRequest, dto.Err(fmt.Sprintf("%s exceeds the 10 MB limit", fh.Filename)))
			return
		}

		f, err := fh.Open()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to read upload"))
			return
		}

		head := make([]byte, 512)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			f.Close()
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to read upload"))
			return
		}
		head = head[:n]

		contentType := http.DetectContentType(head)
		if !validation.IsImageContentType(contentType) {
			f.Close()
			writeJSON(w, http.StatusBadRequest, dto.Err("Only images allowed"))
			return
		}

		name := uploadName(fh.Filename)
		url, err := h.store.Save(r.Context(), name, contentType, io.MultiReader(bytes.NewReader(head), f))
		f.Close()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.Err("Failed to store upload"))
			return
		}

		urls = append(urls, url)
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool     `json:"success"`
		URLs    []string `json:"urls"`
	}{Success: true, URLs: urls})
}

// uploadName prefixes the client filename with a timestamp, mirroring how
// listings have historically referenced their images.
func uploadName(original string) string {
	base := filepath.Base(original)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
