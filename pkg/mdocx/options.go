package mdocx

// Options controls a single conversion
type Options struct {
	// Theme selects fonts and colors; empty means DefaultTheme
	Theme Theme
	// IncludeTOC replaces the [[toc]] marker with a list of heading texts.
	// ConvertMarkdown also inserts the marker when the input has none.
	IncludeTOC bool
	// LegacyInline resolves inline markup with independent per-delimiter scans
	// instead of the nesting-aware tokenizer
	LegacyInline bool
}

// Validate checks that the options refer to known values
func (o Options) Validate() error {
	if o.Theme != "" && !o.Theme.Valid() {
		return NewOptionError("theme", string(o.Theme), "unknown theme")
	}
	return nil
}

// theme returns the effective theme
func (o Options) theme() Theme {
	if o.Theme == "" {
		return DefaultTheme
	}
	return o.Theme
}
