// Package selector decides which content pages go into generated artifacts.
package selector

import (
	"strings"

	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/settings"
)

// Select returns pages which are not excluded, preserving input order
func Select(pages []domain.Page, s settings.Settings) []domain.Page {
	templates := s.EffectiveExcludeTemplates()
	res := make([]domain.Page, 0, len(pages))
	for _, p := range pages {
		if !isExcluded(p, s, templates) {
			res = append(res, p)
		}
	}
	return res
}

// IsExcluded checks a single page. The first matching rule decides:
// include list, then templates (faq aliases included), then exclude list.
func IsExcluded(p domain.Page, s settings.Settings) bool {
	return isExcluded(p, s, s.EffectiveExcludeTemplates())
}

func isExcluded(p domain.Page, s settings.Settings, templates map[string]struct{}) bool {
	segments := strings.Split(p.URI, "/")

	for _, e := range s.IncludePages {
		if e = strings.TrimSpace(e); e == "" {
			continue
		}
		if matchesPath(p, segments, e) {
			return false
		}
	}

	if _, ok := templates[p.Template]; ok {
		return true
	}
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if _, ok := templates[seg]; ok {
			return true
		}
	}

	for _, e := range s.ExcludePages {
		if e = strings.TrimSpace(e); e == "" {
			continue
		}
		// last segment match is covered by any-segment match
		if matchesPath(p, segments, e) {
			return true
		}
	}
	return false
}

// matchesPath reports whether entry refers to the page itself, one of its ancestors or any uri segment
func matchesPath(p domain.Page, segments []string, entry string) bool {
	if p.ID == entry || p.URI == entry || strings.HasPrefix(p.URI, entry+"/") {
		return true
	}
	for _, seg := range segments {
		if seg == entry {
			return true
		}
	}
	return false
}
