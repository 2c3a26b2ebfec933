package pipeline

import "regexp"

// Inline patterns. Matching is non-nested: brackets inside link text,
// parentheses inside URLs, and asterisks inside emphasis are unsupported
// and may match partially or pass through literally.
var (
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strongPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
)

// inlineRule is one pattern substitution.
type inlineRule struct {
	pattern *regexp.Regexp
	replace string
}

// inlineRules applies its rules left to right. Order matters: strong must
// run before em so "**x**" is not read as two empty emphasis spans.
type inlineRules []inlineRule

func (rules inlineRules) apply(s string) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}
	return s
}

// htmlInline has no code span rule; backticks reach the HTML output as is.
var htmlInline = inlineRules{
	{linkPattern, `<a href="${2}">${1}</a>`},
	{strongPattern, `<strong>${1}</strong>`},
	{emPattern, `<em>${1}</em>`},
}

// textInline keeps URLs as a parenthetical and strips emphasis markers.
var textInline = inlineRules{
	{linkPattern, `${1} (${2})`},
	{strongPattern, `${1}`},
	{emPattern, `${1}`},
	{codePattern, `「${1}」`},
}

// InlineHTML applies the HTML inline transform to s.
func InlineHTML(s string) string {
	return htmlInline.apply(s)
}

// InlineText applies the plain-text inline transform to s.
func InlineText(s string) string {
	return textInline.apply(s)
}
