// Package goquery provides HTML processing implementations for hunt
// services: the posting content cleaner and the job-alert email parsers.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobhunt-dev/hunt"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements hunt.Cleaner at compile time.
var _ hunt.Cleaner = (*Cleaner)(nil)

// jsSignatureMinLen guards the inline-script check: only elements whose
// direct text exceeds this length are candidates for page-state JSON blobs.
const jsSignatureMinLen = 50

// uiNoiseMaxLen guards the UI-noise check: only elements whose full text is
// shorter than this are dropped for containing a noise phrase, so a long
// genuine description that mentions one in passing survives.
const uiNoiseMaxLen = 500

// skippedTags are never rendered, including their subtrees.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
	"path":     true,
}

// jsSignatures mark inlined page-state or bundler output that leaks into
// element text on JavaScript-heavy pages.
var jsSignatures = []string{
	"window.__",
	"webpack",
	"module_cache",
	"__como_",
}

// uiNoisePhrases identify short UI elements that render near postings but
// are not posting content.
var uiNoisePhrases = []string{
	"set alert for similar jobs",
	"tailor my resume",
	"show premium insights",
	"am i a good fit",
	"how should i prepare",
	"see how you compare to other applicants",
}

// endMarkers bound the job content: everything from the first occurrence of
// any marker onward is trailing boilerplate. Matched case-sensitively.
var endMarkers = []string{
	"… more",
	"More jobs",
	"Looking for talent?",
	"Actively reviewing applicants",
	"LinkedIn Corporation ©",
	"Select language",
}

// Cleaner renders posting HTML as plain text: block and list structure
// become newlines and bullet markers, scripts and UI chrome are dropped,
// and trailing boilerplate is truncated.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean renders an HTML fragment as plain text. Malformed fragments yield
// best-effort output from whatever subset parses; absence of content yields
// the empty string. Clean never fails.
func (c *Cleaner) Clean(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, node := range doc.Selection.Nodes {
		renderNode(&sb, node)
	}

	return truncateAtEndMarker(collapseLines(sb.String()))
}

// renderNode walks the tree emitting text. li becomes a bulleted line,
// block elements and br become line breaks, everything else recurses
// transparently.
func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		if skippedTags[n.Data] {
			return
		}
		if hasInlineScriptPayload(n) || isUINoise(n) {
			return
		}
		switch n.Data {
		case "li":
			sb.WriteString("• ")
			renderChildren(sb, n)
			sb.WriteString("\n")
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6":
			renderChildren(sb, n)
			sb.WriteString("\n")
		case "br":
			sb.WriteString("\n")
		default:
			renderChildren(sb, n)
		}
	default:
		renderChildren(sb, n)
	}
}

func renderChildren(sb *strings.Builder, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		renderNode(sb, child)
	}
}

// hasInlineScriptPayload reports whether the element's direct
// (non-descendant) text is a leaked page-state blob. This catches JSON
// state inlined outside script tags, which would otherwise dominate the
// cleaned output.
func hasInlineScriptPayload(n *html.Node) bool {
	direct := directText(n)
	if len(direct) <= jsSignatureMinLen {
		return false
	}
	for _, sig := range jsSignatures {
		if strings.Contains(direct, sig) {
			return true
		}
	}
	return false
}

// isUINoise reports whether the element is a short UI fragment containing a
// noise phrase. Elements with block descendants are containers, including
// the html/head/body wrappers the parser adds, and are never dropped
// wholesale; the check runs again on each child, so noise is removed at the
// smallest enclosing block and sibling content survives.
func isUINoise(n *html.Node) bool {
	if hasBlockDescendant(n) {
		return false
	}
	full := strings.ToLower(fullText(n))
	if len(full) >= uiNoiseMaxLen {
		return false
	}
	for _, phrase := range uiNoisePhrases {
		if strings.Contains(full, phrase) {
			return true
		}
	}
	return false
}

// blockTags are elements treated as line-producing blocks.
var blockTags = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func hasBlockDescendant(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if blockTags[child.Data] || hasBlockDescendant(child) {
			return true
		}
	}
	return false
}

// directText concatenates the element's immediate text-node children.
func directText(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

// fullText concatenates all descendant text.
func fullText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// collapseLines trims every line and drops empty ones.
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}

// truncateAtEndMarker cuts the text at the earliest end marker occurrence.
func truncateAtEndMarker(text string) string {
	cut := -1
	for _, marker := range endMarkers {
		if idx := strings.Index(text, marker); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut < 0 {
		return text
	}
	return strings.TrimSpace(text[:cut])
}
