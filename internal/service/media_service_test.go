package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/campushub/campushub-backend/internal/config"
)

func testMediaService(t *testing.T) *MediaService {
	t.Helper()
	return NewMediaService(&config.Config{
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	})
}

// uploadRequest builds a multipart request with one file part carrying
// an explicit Content-Type.
func uploadRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMediaStoreAndOpen(t *testing.T) {
	svc := testMediaService(t)
	content := []byte("%PDF-1.4 test")

	req := uploadRequest(t, "file", "curriculum.pdf", "application/pdf", content)
	file, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	defer file.Close()

	name, err := svc.Store(file, header)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("name = %q, want .pdf extension from MIME type", name)
	}
	if strings.ContainsAny(name, "/\\") {
		t.Errorf("name = %q, must be a plain path segment", name)
	}

	f, err := svc.Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored content differs: got %q", got)
	}
}

func TestMediaStore_DistinctNamesForIdenticalUploads(t *testing.T) {
	svc := testMediaService(t)
	names := make(map[string]bool)

	for i := 0; i < 5; i++ {
		req := uploadRequest(t, "file", "a.png", "image/png", []byte("png-bytes"))
		file, header, err := req.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		name, err := svc.Store(file, header)
		file.Close()
		if err != nil {
			t.Fatalf("Store: %v", err)
		}
		if names[name] {
			t.Fatalf("duplicate generated name %q", name)
		}
		names[name] = true
	}
}

func TestMediaStore_UnsupportedType(t *testing.T) {
	svc := testMediaService(t)
	req := uploadRequest(t, "file", "run.sh", "application/x-sh", []byte("#!/bin/sh"))
	file, header, _ := req.FormFile("file")
	defer file.Close()

	if _, err := svc.Store(file, header); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
}

func TestMediaStore_TooLarge(t *testing.T) {
	svc := NewMediaService(&config.Config{UploadDir: t.TempDir(), MaxUploadBytes: 4})
	req := uploadRequest(t, "file", "big.png", "image/png", []byte("more than four bytes"))
	file, header, _ := req.FormFile("file")
	defer file.Close()

	if _, err := svc.Store(file, header); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestMediaOpen_RejectsTraversalAndMissing(t *testing.T) {
	svc := testMediaService(t)

	for _, name := range []string{"", ".", "..", "../secret", "a/b.pdf", "no-such-file.pdf"} {
		if _, err := svc.Open(name); !errors.Is(err, ErrFileNotFound) {
			t.Errorf("Open(%q) err = %v, want ErrFileNotFound", name, err)
		}
	}
}
