package models

// ScriptCategoryEntry assigns consent categories to one third-party script
// of a site. Entries are saved by the site owner and read by visitors.
type ScriptCategoryEntry struct {
	Src                *string  `json:"src,omitempty"`
	Content            *string  `json:"content"`
	SelectedCategories []string `json:"selectedCategories"`
}

// Sanitized returns the entry without inline script content, which is never
// handed out to visitors.
func (e ScriptCategoryEntry) Sanitized() ScriptCategoryEntry {
	categories := e.SelectedCategories
	if categories == nil {
		categories = []string{}
	}
	return ScriptCategoryEntry{
		Src:                e.Src,
		Content:            nil,
		SelectedCategories: categories,
	}
}
