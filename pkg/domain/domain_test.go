package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageChangeEvents(t *testing.T) {
	base := Page{ID: "about", URI: "about", Title: "About", Template: "default", Listed: true}

	tests := []struct {
		name   string
		mod    func(p *Page)
		events []ContentEvent
	}{
		{name: "no change", mod: func(*Page) {}, events: []ContentEvent{EventPageUpdated}},
		{name: "description only", mod: func(p *Page) { p.Description = "new" }, events: []ContentEvent{EventPageUpdated}},
		{name: "unlisted", mod: func(p *Page) { p.Listed = false }, events: []ContentEvent{EventPageUpdated, EventPageStatusChanged}},
		{name: "slug", mod: func(p *Page) { p.URI = "company/about" }, events: []ContentEvent{EventPageUpdated, EventPageSlugChanged}},
		{name: "title", mod: func(p *Page) { p.Title = "About us" }, events: []ContentEvent{EventPageUpdated, EventPageTitleChanged}},
		{
			name: "everything",
			mod: func(p *Page) {
				p.Listed, p.URI, p.Title, p.Template = false, "x", "X", "faq"
			},
			events: []ContentEvent{EventPageUpdated, EventPageStatusChanged, EventPageSlugChanged, EventPageTitleChanged, EventPageTemplateChanged},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := base
			tt.mod(&updated)
			assert.Equal(t, tt.events, PageChangeEvents(base, updated))
		})
	}
}

func TestSite_SummaryDescription(t *testing.T) {
	assert.Empty(t, Site{}.SummaryDescription())
	assert.Equal(t, "meta", Site{MetaDescription: "meta"}.SummaryDescription())
	assert.Equal(t, "desc", Site{Description: "desc", MetaDescription: "meta"}.SummaryDescription())
	assert.Equal(t, "llms", Site{LLMsDescription: "llms", Description: "desc", MetaDescription: "meta"}.SummaryDescription())
}
