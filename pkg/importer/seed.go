package importer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/llmstxt/pkg/domain"
)

// Seed is the content seed file structure
type Seed struct {
	Site  SeedSite   `yaml:"site"`
	Pages []SeedPage `yaml:"pages"`
}

// SeedSite describes site metadata in the seed file
type SeedSite struct {
	Title           string `yaml:"title"`
	URL             string `yaml:"url"`
	Description     string `yaml:"description"`
	MetaDescription string `yaml:"meta_description"`
	LLMsDescription string `yaml:"llms_description"`
}

// SeedPage describes a page in the seed file. Uri defaults to id, url to site url joined with uri,
// template to "default" and listed to true.
type SeedPage struct {
	ID          string    `yaml:"id"`
	URI         *string   `yaml:"uri"`
	Template    string    `yaml:"template"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	URL         string    `yaml:"url"`
	Modified    time.Time `yaml:"modified"`
	Listed      *bool     `yaml:"listed"`
}

// LoadSeed reads seed file, environment variables are expanded
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

func (s *Seed) site() (domain.Site, bool) {
	if s.Site == (SeedSite{}) {
		return domain.Site{}, false
	}
	return domain.Site(s.Site), true
}

func (s *Seed) pages() ([]domain.Page, error) {
	res := make([]domain.Page, 0, len(s.Pages))
	seen := make(map[string]struct{}, len(s.Pages))
	for i, p := range s.Pages {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("page #%d: id is required", i+1)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("page %q: duplicate id", id)
		}
		seen[id] = struct{}{}
		if p.Title == "" {
			return nil, fmt.Errorf("page %q: title is required", id)
		}

		page := domain.Page{
			ID:          id,
			URI:         id,
			Template:    p.Template,
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			Modified:    p.Modified.UTC(),
			Listed:      true,
			Position:    i + 1,
		}
		if p.URI != nil {
			page.URI = strings.Trim(*p.URI, "/")
		}
		if page.Template == "" {
			page.Template = "default"
		}
		if p.Listed != nil {
			page.Listed = *p.Listed
		}
		if page.URL == "" {
			if s.Site.URL == "" {
				return nil, fmt.Errorf("page %q: url is required when site url is not set", id)
			}
			page.URL = strings.TrimSuffix(s.Site.URL, "/") + "/" + page.URI
		}
		res = append(res, page)
	}
	return res, nil
}
