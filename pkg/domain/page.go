package domain

import "time"

// Page represents a single node of the content tree
type Page struct {
	ID          string
	URI         string // slash-separated path inside the content tree
	Template    string
	Title       string
	Description string
	URL         string
	Modified    time.Time
	Listed      bool
	Position    int
}
