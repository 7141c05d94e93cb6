package controller

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const indexFile = "index.html"

// StaticController serves the public directory and falls back to index.html
// so client-side routes survive a page refresh
type StaticController struct {
	publicDir string
}

// NewStaticController creates a new StaticController
func NewStaticController(publicDir string) *StaticController {
	return &StaticController{
		publicDir: publicDir,
	}
}

// Serve handles every path no other route matched
func (c *StaticController) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	// path.Clean on a rooted path removes any ".." segment
	cleaned := path.Clean("/" + r.URL.Path)
	if cleaned != "/" {
		candidate := filepath.Join(c.publicDir, filepath.FromSlash(cleaned))
		if serveFile(w, r, candidate) {
			return
		}
	}

	index := filepath.Join(c.publicDir, indexFile)
	if !serveFile(w, r, index) {
		log.Printf("⚠️  Serve: %s not found", index)
		http.NotFound(w, r)
	}
}

// serveFile writes a regular file and reports whether it existed
func serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
