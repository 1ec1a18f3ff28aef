package render

import "encoding/xml"

// SitemapNS is the sitemap protocol namespace
const SitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet represents the root sitemap element
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL represents a single url entry of the sitemap
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}
