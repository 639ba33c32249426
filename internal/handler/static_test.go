package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestHandleStaticFS(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html":         {Data: []byte("<html>spa</html>")},
		"style.css":          {Data: []byte("body{}")},
		"images/heroine.png": {Data: []byte("png")},
	}
	h := HandleStaticFS(fsys)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{"root serves index", "/", "<html>spa</html>"},
		{"existing file", "/style.css", "body{}"},
		{"nested file", "/images/heroine.png", "png"},
		{"client route falls back", "/play/demo", "<html>spa</html>"},
		{"directory falls back", "/images/", "<html>spa</html>"},
		{"traversal stays inside root", "/../../etc/passwd", "<html>spa</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleStaticFS_MissingIndex(t *testing.T) {
	h := HandleStaticFS(fstest.MapFS{})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgPageNotFound)
}
