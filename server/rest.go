package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/repository"
	"github.com/umputun/llmstxt/pkg/settings"
)

// pageJSON is the api representation of a page
type pageJSON struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Template    string    `json:"template"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Modified    time.Time `json:"modified"`
	Listed      bool      `json:"listed"`
	Position    int       `json:"position"`
}

// siteJSON is the api representation of site metadata
type siteJSON struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	MetaDescription string `json:"meta_description"`
	LLMsDescription string `json:"llms_description"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	total, listed, err := s.pages.Count(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to count pages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	status := map[string]any{
		"status":       "ok",
		"version":      s.version,
		"time":         time.Now().UTC(),
		"pages":        total,
		"listed_pages": listed,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listPagesHandler returns all pages in tree order
func (s *Server) listPagesHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := s.pages.All(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get pages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := make([]pageJSON, 0, len(pages))
	for _, p := range pages {
		res = append(res, toPageJSON(p))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// getPageHandler returns a single page
func (s *Server) getPageHandler(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toPageJSON(page))
}

// createPageHandler creates a page and fires page.create
func (s *Server) createPageHandler(w http.ResponseWriter, r *http.Request) {
	req := pageJSON{Listed: true}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid page: %w", err), http.StatusBadRequest)
		return
	}
	req.ID = strings.Trim(strings.TrimSpace(req.ID), "/")
	if req.URI == "" {
		req.URI = req.ID
	}
	if err := validatePage(req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	created, err := s.pages.Create(r.Context(), fromPageJSON(req))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.invalidate(r.Context(), domain.EventPageCreated)
	renderJSON(w, r, http.StatusCreated, toPageJSON(created))
}

// updatePageHandler applies partial update to a page and fires events describing the change
func (s *Server) updatePageHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	old, err := s.pages.Get(r.Context(), id)
	if err != nil {
		renderStoreError(w, r, err)
		return
	}

	req := toPageJSON(old)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid page: %w", err), http.StatusBadRequest)
		return
	}
	req.ID = id
	req.URI = strings.Trim(req.URI, "/")
	req.Modified = time.Now().UTC()
	if err := validatePage(req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	updated, err := s.pages.Update(r.Context(), fromPageJSON(req))
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.invalidate(r.Context(), domain.PageChangeEvents(old, updated)...)
	renderJSON(w, r, http.StatusOK, toPageJSON(updated))
}

// deletePageHandler removes a page and fires page.delete
func (s *Server) deletePageHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.pages.Delete(r.Context(), r.PathValue("id")); err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.invalidate(r.Context(), domain.EventPageDeleted)
	w.WriteHeader(http.StatusNoContent)
}

// getSiteHandler returns site metadata
func (s *Server) getSiteHandler(w http.ResponseWriter, r *http.Request) {
	site, err := s.site.Get(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, siteJSON(site))
}

// updateSiteHandler applies partial update to site metadata and fires site.update
func (s *Server) updateSiteHandler(w http.ResponseWriter, r *http.Request) {
	site, err := s.site.Get(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	req := siteJSON(site)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid site: %w", err), http.StatusBadRequest)
		return
	}
	if err := s.site.Update(r.Context(), domain.Site(req)); err != nil {
		renderStoreError(w, r, err)
		return
	}
	s.invalidate(r.Context(), domain.EventSiteUpdated)
	renderJSON(w, r, http.StatusOK, req)
}

// getSettingsHandler returns effective settings and stored overrides
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	overrides, err := s.settings.GetAll(r.Context())
	if err != nil {
		renderStoreError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"effective": settings.Build(s.config.GetSettingsLayer(), settings.FromMap(overrides)),
		"overrides": overrides,
	})
}

// updateSettingsHandler stores overrides. Null value removes the override. Fires site.update.
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings: %w", err), http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(req))
	var removed []string
	for k, v := range req {
		if !slices.Contains(settings.Keys, k) {
			renderError(w, r, fmt.Errorf("unknown setting %q", k), http.StatusBadRequest)
			return
		}
		if v == nil {
			removed = append(removed, k)
			continue
		}
		str, err := settingValue(v)
		if err != nil {
			renderError(w, r, fmt.Errorf("setting %q: %w", k, err), http.StatusBadRequest)
			return
		}
		values[k] = str
	}

	if err := s.settings.SetAll(r.Context(), values); err != nil {
		renderStoreError(w, r, err)
		return
	}
	for _, k := range removed {
		if err := s.settings.Delete(r.Context(), k); err != nil {
			renderStoreError(w, r, err)
			return
		}
	}
	s.invalidate(r.Context(), domain.EventSiteUpdated)
	s.getSettingsHandler(w, r)
}

// flushCacheHandler drops all cached artifacts
func (s *Server) flushCacheHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.gate.Invalidate(r.Context(), domain.EventCacheFlush); err != nil {
		log.Printf("[WARN] can't flush cache: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "flushed"})
}

// settingValue converts json value to the string form stored in overrides
func settingValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		if val != float64(int(val)) {
			return "", fmt.Errorf("integer expected, got %v", val)
		}
		return strconv.Itoa(int(val)), nil
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			str, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("list of strings expected")
			}
			items = append(items, str)
		}
		return strings.Join(items, ","), nil
	default:
		return "", fmt.Errorf("unsupported value %v", v)
	}
}

func validatePage(p pageJSON) error {
	switch {
	case p.ID == "":
		return errors.New("page id is required")
	case strings.TrimSpace(p.Title) == "":
		return errors.New("page title is required")
	case strings.TrimSpace(p.URL) == "":
		return errors.New("page url is required")
	}
	return nil
}

func toPageJSON(p domain.Page) pageJSON {
	return pageJSON{ID: p.ID, URI: p.URI, Template: p.Template, Title: p.Title, Description: p.Description,
		URL: p.URL, Modified: p.Modified, Listed: p.Listed, Position: p.Position}
}

func fromPageJSON(p pageJSON) domain.Page {
	return domain.Page{ID: p.ID, URI: p.URI, Template: p.Template, Title: p.Title, Description: p.Description,
		URL: p.URL, Modified: p.Modified, Listed: p.Listed, Position: p.Position}
}

// renderStoreError maps repository errors to http status
func renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, repository.ErrExists):
		renderError(w, r, err, http.StatusConflict)
	default:
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
