// Package goquery implements the problem extraction engine on top of
// CSS-selector HTML traversal. It locates the problem content
// container, selects the preferred language variant, classifies
// titled content blocks into semantic fields, pairs sample
// input/output blocks into ordered cases, and normalizes markup into
// plain/markdown text.
package goquery

import (
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	pcapi "github.com/williamsiker/pc-api"
)

// DefaultLocales is the locale preference order when none is
// configured: English first, Japanese as fallback.
var DefaultLocales = []string{"en", "ja"}

var (
	scoreRe     = regexp.MustCompile(`(\d+)`)
	timeLimitRe = regexp.MustCompile(`Time Limit[^\d]*(\d+(?:\.\d+)?)`)
	memLimitRe  = regexp.MustCompile(`Memory Limit[^\d]*(\d+)`)
)

// Ensure Extractor implements pcapi.ProblemExtractor at compile time.
var _ pcapi.ProblemExtractor = (*Extractor)(nil)

// Extractor extracts structured problems from AtCoder task pages.
// It is stateless across calls and safe for concurrent use.
type Extractor struct {
	locales []string
	logger  *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLocales sets the locale preference order for selecting a
// language variant. The first variant present in the document wins.
func WithLocales(locales ...string) Option {
	return func(e *Extractor) {
		e.locales = locales
	}
}

// WithLogger sets the logger for extraction diagnostics (skipped and
// unmapped blocks, metadata parse failures). Silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		locales: DefaultLocales,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page HTML and returns the structured problem.
// Returns EUNPROCESSABLE when the page holds no problem content; every
// other irregularity degrades to an empty field or documented default.
func (e *Extractor) Extract(page string) (*pcapi.Problem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, pcapi.Errorf(pcapi.EINVALID, "failed to parse HTML: %v", err)
	}

	statement := doc.Find("#task-statement").First()
	if statement.Length() == 0 {
		return nil, pcapi.Errorf(pcapi.EUNPROCESSABLE, "problem content not found in document")
	}

	content := e.selectLocale(statement)

	problem := &pcapi.Problem{
		Title:       pageTitle(doc),
		Score:       e.extractScore(content),
		TimeLimit:   pcapi.DefaultTimeLimit,
		MemoryLimit: pcapi.DefaultMemoryLimit,
		FetchedAt:   time.Now().UTC(),
	}
	e.extractLimits(doc.Selection, problem)

	sections, samples := e.classify(content)
	problem.Statement = sections[SectionStatement]
	problem.Constraints = sections[SectionConstraints]
	problem.InputFormat = sections[SectionInputFormat]
	problem.OutputFormat = sections[SectionOutputFormat]
	problem.Notes = sections[SectionNotes]
	problem.Samples = samples

	return problem, nil
}

// selectLocale picks the first present language variant from the
// preference list, falling back to the whole container. Variants are
// never merged.
func (e *Extractor) selectLocale(statement *goquery.Selection) *goquery.Selection {
	for _, locale := range e.locales {
		variant := statement.Find("span.lang-" + locale).First()
		if variant.Length() > 0 {
			e.logger.Debug("selected language variant", "locale", locale)
			return variant
		}
	}
	e.logger.Debug("no language variant found, using full container")
	return statement
}

// classify walks the content blocks in document order, routing each to
// a semantic section or to the sample pairing machine.
func (e *Extractor) classify(content *goquery.Selection) (map[SectionKey]string, []pcapi.SampleCase) {
	sections := make(map[SectionKey]string)
	var samples sampleBuilder

	content.Find("div.part").Each(func(_ int, part *goquery.Selection) {
		heading := part.Find("h3").First()
		if heading.Length() == 0 {
			return
		}
		title := strings.TrimSpace(heading.Text())

		body := part.Find("section").First()
		if body.Length() == 0 {
			e.logger.Debug("block has no body, skipped", "title", title)
			return
		}

		text := normalizeSection(body)
		if text == "" {
			e.logger.Debug("block normalized to empty, skipped", "title", title)
			return
		}

		switch {
		case isSampleInputTitle(title):
			samples.OpenInput(text)
		// The Japanese explanation heading contains the output
		// keyword, so explanation must be tested first.
		case isSampleExplanationTitle(title):
			if !samples.SetExplanation(text) {
				e.logger.Debug("orphan sample explanation dropped", "title", title)
			}
		case isSampleOutputTitle(title):
			if !samples.SetOutput(text) {
				e.logger.Debug("orphan sample output dropped", "title", title)
			}
		default:
			key, ok := matchSection(title)
			if !ok {
				e.logger.Debug("unmapped block discarded", "title", title)
				return
			}
			// Last write wins on duplicate headings.
			sections[key] = text
		}
	})

	return sections, samples.Cases()
}

// extractScore finds the first text node in the language content
// containing a score keyword and parses the first integer near it.
func (e *Extractor) extractScore(content *goquery.Selection) int {
	text, ok := findTextNode(content, func(s string) bool {
		return strings.Contains(s, "Score") || strings.Contains(s, "配点")
	})
	if !ok {
		return pcapi.DefaultScore
	}
	m := scoreRe.FindStringSubmatch(text)
	if m == nil {
		e.logger.Debug("score text found but not parsable", "text", text)
		return pcapi.DefaultScore
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		e.logger.Debug("score value out of range", "text", m[1])
		return pcapi.DefaultScore
	}
	return score
}

// extractLimits searches the whole document, not just the language
// sub-tree, for time and memory limit text. Parse failures leave the
// defaults in place.
func (e *Extractor) extractLimits(doc *goquery.Selection, problem *pcapi.Problem) {
	text, ok := findTextNode(doc, func(s string) bool {
		return strings.Contains(s, "Time Limit") || strings.Contains(s, "Memory Limit")
	})
	if !ok {
		return
	}

	if m := timeLimitRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			problem.TimeLimit = v
		} else {
			e.logger.Debug("time limit not parsable", "text", m[1])
		}
	}
	if m := memLimitRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			problem.MemoryLimit = v
		} else {
			e.logger.Debug("memory limit not parsable", "text", m[1])
		}
	}
}

// findTextNode returns the first text node in document order within
// sel whose content satisfies match.
func findTextNode(sel *goquery.Selection, match func(string) bool) (string, bool) {
	var found string
	var ok bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if ok {
			return
		}
		if n.Type == html.TextNode && match(n.Data) {
			found, ok = n.Data, true
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return found, ok
}

// pageTitle returns the trimmed immediate text of the page's primary
// heading element, excluding nested tag text.
func pageTitle(doc *goquery.Document) string {
	heading := doc.Find(".h2").First()
	if heading.Length() == 0 {
		return ""
	}
	for c := heading.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if text := strings.TrimSpace(c.Data); text != "" {
				return text
			}
		}
	}
	return ""
}
