package dashboard

import (
	"bytes"
	"html/template"
	"time"

	"github.com/goodsign/monday"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
)

// dateLocale pairs a language tag with the long date layout used for it.
type dateLocale struct {
	tag    language.Tag
	locale monday.Locale
	layout string
}

// The first entry is the fallback when nothing in Accept-Language matches.
var dateLocales = []dateLocale{
	{language.AmericanEnglish, monday.LocaleEnUS, "January 2, 2006"},
	{language.BritishEnglish, monday.LocaleEnGB, "2 January 2006"},
	{language.French, monday.LocaleFrFR, "2 January 2006"},
	{language.German, monday.LocaleDeDE, "2. January 2006"},
	{language.Spanish, monday.LocaleEsES, "2 de January de 2006"},
	{language.Italian, monday.LocaleItIT, "2 January 2006"},
	{language.BrazilianPortuguese, monday.LocalePtBR, "2 de January de 2006"},
	{language.Dutch, monday.LocaleNlNL, "2 January 2006"},
	{language.Japanese, monday.LocaleJaJP, "2006年1月2日"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// FormatDate renders t in the long form of the best locale for acceptLanguage.
func FormatDate(t time.Time, acceptLanguage string) string {
	_, idx := language.MatchStrings(dateMatcher, acceptLanguage)
	if idx < 0 || idx >= len(dateLocales) {
		idx = 0
	}
	l := dateLocales[idx]
	return monday.Format(t, l.layout, l.locale)
}

var contentPolicy = bluemonday.UGCPolicy()

// RenderContent converts an article body from Markdown to sanitized HTML.
// Plain text bodies come out as paragraphs.
func RenderContent(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return template.HTML(contentPolicy.SanitizeBytes(buf.Bytes())), nil
}
