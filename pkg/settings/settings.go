// Package settings defines the per-request generation settings and their layered construction.
// Layers are merged field-by-field in order: Defaults, file config, live overrides.
package settings

import (
	"strconv"
	"strings"
)

// FAQTemplates are always excluded, regardless of configured templates
var FAQTemplates = []string{"faq", "faqs", "faqpage", "faq-page"}

// Map keys accepted by FromMap
const (
	KeyEnabled              = "enabled"
	KeySitemapEnabled       = "sitemapEnabled"
	KeyCacheEnabled         = "cacheEnabled"
	KeyCacheDurationMinutes = "cacheDurationMinutes"
	KeyAddTrailingSlash     = "addTrailingSlash"
	KeyExcludeTemplates     = "excludeTemplates"
	KeyExcludePages         = "excludePages"
	KeyIncludePages         = "includePages"
	KeySitemapHomepage      = "sitemapHomepage"
)

// Keys lists all recognized keys in a stable order
var Keys = []string{
	KeyEnabled, KeySitemapEnabled, KeyCacheEnabled, KeyCacheDurationMinutes, KeyAddTrailingSlash,
	KeyExcludeTemplates, KeyExcludePages, KeyIncludePages, KeySitemapHomepage,
}

const defaultCacheDuration = 60

// Settings is an immutable snapshot used for a single request
type Settings struct {
	Enabled              bool     `json:"enabled"`
	SitemapEnabled       bool     `json:"sitemapEnabled"`
	CacheEnabled         bool     `json:"cacheEnabled"`
	CacheDurationMinutes int      `json:"cacheDurationMinutes"`
	AddTrailingSlash     bool     `json:"addTrailingSlash"`
	ExcludeTemplates     []string `json:"excludeTemplates"`
	ExcludePages         []string `json:"excludePages"`
	IncludePages         []string `json:"includePages"`
	SitemapHomepage      bool     `json:"sitemapHomepage"`
}

// Layer is a partial settings structure, nil fields (and empty lists) are not set
type Layer struct {
	Enabled              *bool    `yaml:"enabled" json:"enabled,omitempty" jsonschema:"description=Serve llms.txt"`
	SitemapEnabled       *bool    `yaml:"sitemap_enabled" json:"sitemap_enabled,omitempty" jsonschema:"description=Serve sitemap.xml"`
	CacheEnabled         *bool    `yaml:"cache" json:"cache,omitempty" jsonschema:"description=Cache generated artifacts"`
	CacheDurationMinutes *int     `yaml:"cache_duration" json:"cache_duration,omitempty" jsonschema:"description=Cache TTL in minutes,minimum=1"`
	AddTrailingSlash     *bool    `yaml:"add_trailing_slash" json:"add_trailing_slash,omitempty" jsonschema:"description=Append trailing slash to page URLs"`
	ExcludeTemplates     []string `yaml:"exclude_templates" json:"exclude_templates,omitempty" jsonschema:"description=Templates to exclude (faq aliases always excluded)"`
	ExcludePages         []string `yaml:"exclude_pages" json:"exclude_pages,omitempty" jsonschema:"description=Page ids or uris or uri segments to exclude"`
	IncludePages         []string `yaml:"include_pages" json:"include_pages,omitempty" jsonschema:"description=Page ids or uris or uri segments overriding exclusion"`
	SitemapHomepage      *bool    `yaml:"sitemap_homepage" json:"sitemap_homepage,omitempty" jsonschema:"description=Emit synthetic homepage entry first in sitemap.xml"`
}

// Defaults returns built-in settings
func Defaults() Settings {
	return Settings{
		Enabled:              true,
		SitemapEnabled:       true,
		CacheEnabled:         false,
		CacheDurationMinutes: defaultCacheDuration,
		AddTrailingSlash:     true,
		ExcludeTemplates:     []string{"error"},
		ExcludePages:         []string{},
		IncludePages:         []string{},
		SitemapHomepage:      true,
	}
}

// Build merges layers on top of Defaults, later layers win
func Build(layers ...Layer) Settings {
	s := Defaults()
	for _, l := range layers {
		s = s.Apply(l)
	}
	return s
}

// Apply returns a copy of settings with all set fields of the layer applied.
// Non-positive cache duration is rejected and the current value kept.
func (s Settings) Apply(l Layer) Settings {
	res := s
	if l.Enabled != nil {
		res.Enabled = *l.Enabled
	}
	if l.SitemapEnabled != nil {
		res.SitemapEnabled = *l.SitemapEnabled
	}
	if l.CacheEnabled != nil {
		res.CacheEnabled = *l.CacheEnabled
	}
	if l.CacheDurationMinutes != nil && *l.CacheDurationMinutes > 0 {
		res.CacheDurationMinutes = *l.CacheDurationMinutes
	}
	if l.AddTrailingSlash != nil {
		res.AddTrailingSlash = *l.AddTrailingSlash
	}
	if l.SitemapHomepage != nil {
		res.SitemapHomepage = *l.SitemapHomepage
	}
	if len(l.ExcludeTemplates) > 0 {
		res.ExcludeTemplates = cloneList(l.ExcludeTemplates)
	}
	if len(l.ExcludePages) > 0 {
		res.ExcludePages = cloneList(l.ExcludePages)
	}
	if len(l.IncludePages) > 0 {
		res.IncludePages = cloneList(l.IncludePages)
	}
	return res
}

// EffectiveExcludeTemplates returns configured templates plus FAQ aliases, without duplicates
func (s Settings) EffectiveExcludeTemplates() map[string]struct{} {
	res := make(map[string]struct{}, len(s.ExcludeTemplates)+len(FAQTemplates))
	for _, t := range s.ExcludeTemplates {
		res[t] = struct{}{}
	}
	for _, t := range FAQTemplates {
		res[t] = struct{}{}
	}
	return res
}

// FromMap parses a layer from string values. Unknown keys are ignored,
// malformed values are skipped so the lower layers stay in effect.
func FromMap(m map[string]string) Layer {
	var l Layer
	l.Enabled = parseBool(m, KeyEnabled)
	l.SitemapEnabled = parseBool(m, KeySitemapEnabled)
	l.CacheEnabled = parseBool(m, KeyCacheEnabled)
	l.AddTrailingSlash = parseBool(m, KeyAddTrailingSlash)
	l.SitemapHomepage = parseBool(m, KeySitemapHomepage)
	if v, ok := m[KeyCacheDurationMinutes]; ok {
		if d, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && d > 0 {
			l.CacheDurationMinutes = &d
		}
	}
	l.ExcludeTemplates = SplitList(m[KeyExcludeTemplates])
	l.ExcludePages = SplitList(m[KeyExcludePages])
	l.IncludePages = SplitList(m[KeyIncludePages])
	return l
}

// ToMap converts settings to the string mapping understood by FromMap
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		KeyEnabled:              strconv.FormatBool(s.Enabled),
		KeySitemapEnabled:       strconv.FormatBool(s.SitemapEnabled),
		KeyCacheEnabled:         strconv.FormatBool(s.CacheEnabled),
		KeyCacheDurationMinutes: strconv.Itoa(s.CacheDurationMinutes),
		KeyAddTrailingSlash:     strconv.FormatBool(s.AddTrailingSlash),
		KeyExcludeTemplates:     strings.Join(s.ExcludeTemplates, ","),
		KeyExcludePages:         strings.Join(s.ExcludePages, ","),
		KeyIncludePages:         strings.Join(s.IncludePages, ","),
		KeySitemapHomepage:      strconv.FormatBool(s.SitemapHomepage),
	}
}

// SplitList splits comma or newline separated values, trimmed, empty entries dropped
func SplitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '\n' || r == '\r' })
	res := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

func parseBool(m map[string]string, key string) *bool {
	v, ok := m[key]
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &b
}

func cloneList(l []string) []string {
	res := make([]string, len(l))
	copy(res, l)
	return res
}
