package domain

// Site represents site-level metadata
type Site struct {
	Title           string
	URL             string
	Description     string
	MetaDescription string
	LLMsDescription string // dedicated description for llms.txt, wins over the others
}

// SummaryDescription returns the first non-empty of llms, regular and meta description
func (s Site) SummaryDescription() string {
	for _, d := range []string{s.LLMsDescription, s.Description, s.MetaDescription} {
		if d != "" {
			return d
		}
	}
	return ""
}
