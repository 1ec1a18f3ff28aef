package domain

// ContentEvent represents a content mutation which invalidates generated artifacts
type ContentEvent string

const (
	EventPageCreated         ContentEvent = "page.create"
	EventPageUpdated         ContentEvent = "page.update"
	EventPageDeleted         ContentEvent = "page.delete"
	EventPageStatusChanged   ContentEvent = "page.changeStatus"
	EventPageSlugChanged     ContentEvent = "page.changeSlug"
	EventPageTitleChanged    ContentEvent = "page.changeTitle"
	EventPageTemplateChanged ContentEvent = "page.changeTemplate"
	EventSiteUpdated         ContentEvent = "site.update"
	EventCacheFlush          ContentEvent = "cache.flush" // explicit flush request
)

// PageChangeEvents returns events describing the difference between old and updated page.
// Always returns at least EventPageUpdated.
func PageChangeEvents(old, updated Page) []ContentEvent {
	events := []ContentEvent{EventPageUpdated}
	if old.Listed != updated.Listed {
		events = append(events, EventPageStatusChanged)
	}
	if old.URI != updated.URI {
		events = append(events, EventPageSlugChanged)
	}
	if old.Title != updated.Title {
		events = append(events, EventPageTitleChanged)
	}
	if old.Template != updated.Template {
		events = append(events, EventPageTemplateChanged)
	}
	return events
}
