package goquery

import "strings"

// SectionKey identifies a semantic field of a problem statement.
type SectionKey string

// Section keys targeted by the classifier.
const (
	SectionStatement    SectionKey = "statement"
	SectionConstraints  SectionKey = "constraints"
	SectionInputFormat  SectionKey = "input_format"
	SectionOutputFormat SectionKey = "output_format"
	SectionNotes        SectionKey = "notes"
)

// sectionPattern maps a section key to its title keywords across the
// supported locales. Patterns are tested by substring match.
type sectionPattern struct {
	key      SectionKey
	keywords []string
}

// sectionPatterns holds the classifier's keyword table in priority
// order: the first key whose keyword matches a block title wins.
// Adding a locale means extending these keyword lists.
var sectionPatterns = []sectionPattern{
	{SectionStatement, []string{"Problem Statement", "Problem", "問題文", "問題"}},
	{SectionConstraints, []string{"Constraints", "制約", "制約条件"}},
	{SectionInputFormat, []string{"Input", "Input Format", "入力", "入力形式"}},
	{SectionOutputFormat, []string{"Output", "Output Format", "出力", "出力形式"}},
	{SectionNotes, []string{"Notes", "Note", "Hint", "注意", "ヒント", "補足"}},
}

// Sample block keywords. These take priority over sectionPatterns and
// route blocks to the sample pairing state machine instead.
var (
	sampleInputKeywords       = []string{"Sample Input", "入力例"}
	sampleOutputKeywords      = []string{"Sample Output", "出力例"}
	sampleExplanationKeywords = []string{"Sample Explanation", "出力例の説明"}
)

// matchSection returns the first section key whose keywords match the
// title, or "" if the title is unmapped.
func matchSection(title string) (SectionKey, bool) {
	for _, p := range sectionPatterns {
		for _, kw := range p.keywords {
			if strings.Contains(title, kw) {
				return p.key, true
			}
		}
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func isSampleInputTitle(title string) bool  { return containsAny(title, sampleInputKeywords) }
func isSampleOutputTitle(title string) bool { return containsAny(title, sampleOutputKeywords) }
func isSampleExplanationTitle(title string) bool {
	return containsAny(title, sampleExplanationKeywords)
}
