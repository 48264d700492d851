package helper

import (
	"regexp"
	"strings"
)

var (
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	spacesRe = regexp.MustCompile(`\s+`)
)

// StripHTML membuang seluruh tag HTML dari teks kaya (tujuan pembelajaran
// disimpan sebagai HTML dari editor WYSIWYG). Semua jalur pencocokan dan
// tampilan teks TP wajib lewat fungsi ini dulu.
func StripHTML(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = tagRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
