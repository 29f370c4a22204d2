package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// normalizeSection converts one content block's subtree into normalized
// plain/markdown text. It is a pure transform over the borrowed node
// tree: the parsed document is never mutated, so the same subtree can
// be normalized repeatedly with identical results.
//
// Markup handling: decoration nodes (copy buttons, scripts) are
// dropped, math nodes become $formula$, pre blocks become fenced code
// blocks, inline code gets backticks, tables become GitHub-flavored
// markdown, lists become "- item" lines, and br becomes a newline.
// Remaining block children are concatenated in document order and the
// result is re-flowed. Malformed markup degrades to an empty string.
func normalizeSection(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}

	var sb strings.Builder
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		var child strings.Builder
		renderNode(c, &child)
		if text := child.String(); strings.TrimSpace(text) != "" {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
	}

	return reflow(sb.String())
}

// renderNode renders a node and its descendants into sb.
func renderNode(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		if isDecoration(n) {
			return
		}
		switch {
		case n.Data == "br":
			sb.WriteByte('\n')
		case n.Data == "pre":
			if text := strings.TrimSpace(mathText(n)); text != "" {
				sb.WriteString("\n```\n" + text + "\n```\n")
			}
		case n.Data == "code":
			if text := strings.TrimSpace(mathText(n)); text != "" {
				sb.WriteString("`" + text + "`")
			}
		case isMathNode(n):
			renderMath(n, sb)
		case n.Data == "table":
			renderTable(n, sb)
		case n.Data == "ul" || n.Data == "ol":
			renderList(n, sb)
		default:
			renderChildren(n, sb)
		}
	}
}

func renderChildren(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(c, sb)
	}
}

// isDecoration reports whether a node is non-content chrome that must
// not leak into the normalized text.
func isDecoration(n *html.Node) bool {
	if n.Data == "script" {
		return true
	}
	return hasAnyClass(n, "div-btn-copy", "btn-copy", "btn-copy-all")
}

// isMathNode reports whether a node carries math notation: a var
// element or a math-rendering span.
func isMathNode(n *html.Node) bool {
	if n.Data == "var" {
		return true
	}
	return n.Data == "span" && hasAnyClass(n, "katex", "tex-span")
}

// renderMath writes the node's formula wrapped in $...$, preferring
// the explicit data-tex attribute over the rendered display text.
func renderMath(n *html.Node, sb *strings.Builder) {
	formula := attrValue(n, "data-tex")
	if formula == "" {
		formula = strings.TrimSpace(rawText(n))
	}
	if formula == "" {
		return
	}
	sb.WriteString("$" + formula + "$")
}

// renderTable writes a GitHub-flavored-markdown table: a header row
// from th cells with a --- separator row if any header exists, then
// one row per tr built from its td cells. Tables without any cells
// render nothing.
func renderTable(n *html.Node, sb *strings.Builder) {
	var header []string
	forEachElement(n, "th", func(th *html.Node) {
		header = append(header, collapseSpace(inlineText(th)))
	})

	var rows []string
	if len(header) > 0 {
		rows = append(rows, "| "+strings.Join(header, " | ")+" |")
		rows = append(rows, "|"+strings.Repeat("---|", len(header)))
	}

	forEachElement(n, "tr", func(tr *html.Node) {
		var cells []string
		forEachElement(tr, "td", func(td *html.Node) {
			cells = append(cells, collapseSpace(inlineText(td)))
		})
		if len(cells) > 0 {
			rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
		}
	})

	if len(rows) == 0 {
		return
	}
	sb.WriteString("\n" + strings.Join(rows, "\n") + "\n")
}

// renderList writes one "- item" line per list item, surrounded by
// blank-line padding.
func renderList(n *html.Node, sb *strings.Builder) {
	var items []string
	forEachElement(n, "li", func(li *html.Node) {
		if text := collapseSpace(inlineText(li)); text != "" {
			items = append(items, "- "+text)
		}
	})
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + strings.Join(items, "\n") + "\n")
}

// mathText extracts text with math nodes transformed but all other
// markup flattened. Used for pre and code content, where nested
// structure is taken verbatim.
func mathText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if isDecoration(n) {
				return
			}
			if isMathNode(n) {
				renderMath(n, &sb)
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return sb.String()
}

// inlineText extracts single-line content for table cells and list
// items: math and inline code transforms apply, block structure does
// not. Callers collapse whitespace afterwards.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if isDecoration(n) {
				return
			}
			if isMathNode(n) {
				renderMath(n, &sb)
				return
			}
			if n.Data == "code" {
				if text := strings.TrimSpace(mathText(n)); text != "" {
					sb.WriteString("`" + text + "`")
				}
				return
			}
			if n.Data == "br" {
				sb.WriteByte(' ')
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return sb.String()
}

// rawText extracts all descendant text without any transformation.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// forEachElement calls fn for every descendant element with the given
// tag name, in document order.
func forEachElement(n *html.Node, tag string, fn func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				fn(c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAnyClass(n *html.Node, classes ...string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		for _, want := range classes {
			if c == want {
				return true
			}
		}
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// reflow normalizes line structure: trailing whitespace is trimmed per
// line, consecutive non-blank prose lines merge into one space-joined
// block, at most one blank line separates blocks, and leading/trailing
// blank lines are dropped. Lines the normalizer itself constructed as
// structure are kept verbatim: fence markers and fenced content, table
// rows, and list items. Re-flowing already re-flowed text is a no-op.
func reflow(s string) string {
	var out []string
	var block []string
	inFence := false

	flush := func() {
		if len(block) > 0 {
			out = append(out, strings.Join(block, " "))
			block = nil
		}
	}
	appendBlank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			flush()
			out = append(out, trimmed)
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		if trimmed == "" {
			flush()
			appendBlank()
			continue
		}
		if strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "- ") {
			flush()
			out = append(out, trimmed)
			continue
		}
		block = append(block, trimmed)
	}
	flush()

	// Drop leading/trailing blank lines.
	start, end := 0, len(out)
	for start < end && out[start] == "" {
		start++
	}
	for end > start && out[end-1] == "" {
		end--
	}
	return strings.Join(out[start:end], "\n")
}
