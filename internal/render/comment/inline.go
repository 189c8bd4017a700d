package comment

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

func (r renderer) renderInlineChildren(node *nethtml.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(r.renderInlineNode(child))
	}
	return b.String()
}

func (r renderer) renderInlineNode(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
		switch strings.ToLower(node.Data) {
		case "script", "style", "noscript", "img":
			return ""
		case "br":
			return "\n"
		case "a":
			return linkText(normalizeInlineText(r.renderInlineChildren(node)), nodeAttr(node, "href"))
		case "code":
			text := normalizeInlineText(r.renderInlineChildren(node))
			if text == "" {
				return ""
			}
			return "`" + text + "`"
		default:
			return r.renderInlineChildren(node)
		}
	default:
		return ""
	}
}

// linkText prefers the full href when the anchor text is the site's
// shortened form of it.
func linkText(text, href string) string {
	switch {
	case href == "":
		return text
	case text == "":
		return href
	case strings.EqualFold(text, href):
		return href
	}
	if prefix, ok := strings.CutSuffix(text, "..."); ok && strings.HasPrefix(href, prefix) {
		return href
	}
	return text + " (" + href + ")"
}

func normalizeInlineText(s string) string {
	s = html.UnescapeString(s)
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, "\n")
}
