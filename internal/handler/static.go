package handler

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/osse101/LoveSim_Go/internal/logger"
)

// SPAIndex is the single-page-app entry document
const SPAIndex = "index.html"

// ErrMsgPageNotFound is returned when neither the file nor the SPA entry exists
const ErrMsgPageNotFound = "페이지를 찾을 수 없습니다."

// HandleStatic serves files from root and answers every other non-API path
// with the SPA entry document so client-side routes resolve.
func HandleStatic(root string) http.HandlerFunc {
	return HandleStaticFS(os.DirFS(root))
}

// HandleStaticFS is HandleStatic over an arbitrary filesystem
func HandleStaticFS(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" && isRegularFile(fsys, name) {
			http.ServeFileFS(w, r, fsys, name)
			return
		}

		if !isRegularFile(fsys, SPAIndex) {
			logger.FromContext(r.Context()).Error(LogMsgStaticIndexMissing, "path", r.URL.Path)
			respondError(w, http.StatusNotFound, ErrMsgPageNotFound)
			return
		}

		serveIndex(w, r, fsys)
	}
}

// serveIndex writes the entry document with status 200 regardless of path.
// ServeFileFS would redirect requests ending in /index.html, so the content
// is served directly.
func serveIndex(w http.ResponseWriter, r *http.Request, fsys fs.FS) {
	f, err := fsys.Open(SPAIndex)
	if err != nil {
		respondError(w, http.StatusNotFound, ErrMsgPageNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
		return
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := fs.ReadFile(fsys, SPAIndex)
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrMsgInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
		return
	}

	http.ServeContent(w, r, SPAIndex, info.ModTime(), rs)
}

func isRegularFile(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.Mode().IsRegular()
}
