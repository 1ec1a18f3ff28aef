package server

import (
	"log"
	"net/http"

	"github.com/umputun/llmstxt/pkg/artifact"
)

// llmsHandler serves /llms.txt
func (s *Server) llmsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, artifact.KindLLMs, "Failed to generate llms.txt")
}

// sitemapHandler serves /sitemap.xml
func (s *Server) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, artifact.KindSitemap, "Failed to generate sitemap")
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, kind artifact.Kind, failMsg string) {
	resp, err := s.gate.Serve(r.Context(), kind, s.settingsFor(r.Context()))
	if err != nil {
		log.Printf("[ERROR] failed to generate %s: %v", kind, err)
		writeText(w, http.StatusInternalServerError, "text/plain; charset=utf-8", failMsg)
		return
	}

	if resp.Status == http.StatusOK {
		cacheStatus := "MISS"
		if resp.FromCache {
			cacheStatus = "HIT"
		}
		w.Header().Set("X-Cache", cacheStatus)
	}
	writeText(w, resp.Status, resp.ContentType, resp.Body)
}

// writeText writes body as is, without trailing newline added by http.Error
func writeText(w http.ResponseWriter, code int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("[WARN] can't write response: %v", err)
	}
}
