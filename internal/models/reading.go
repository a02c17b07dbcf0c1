package models

// DefaultWordsPerMinute is the reading speed used for reading time estimates.
const DefaultWordsPerMinute = 200

// ReadingMinutes returns ceil(wordCount / wpm). Non-positive word counts read in 0 minutes.
func ReadingMinutes(wordCount, wpm int) int {
	if wordCount <= 0 {
		return 0
	}
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	return (wordCount + wpm - 1) / wpm
}

// ReadingTime returns the estimated minutes to read the article at the default speed.
func (a *Article) ReadingTime() int {
	return ReadingMinutes(a.WordCount, DefaultWordsPerMinute)
}

// Excerpt returns the first n characters of the content and whether it was cut.
// Cuts on rune boundaries.
func (a *Article) Excerpt(n int) (string, bool) {
	return Truncate(a.Content, n)
}

// Truncate returns the first n runes of s and whether anything was dropped.
func Truncate(s string, n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}

// IsValidSortKey reports whether key names a supported sort order.
func IsValidSortKey(key string) bool {
	return key == SortByDate || key == SortByViews
}

// IsValidTheme reports whether theme is light or dark.
func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

// OtherTheme returns the theme a toggle switches to.
func OtherTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
