package pcapi

import (
	"fmt"
	"strings"
)

// FormatProblem formats a problem for terminal display.
// Empty sections are omitted; sections are separated by blank lines.
func FormatProblem(p *Problem) string {
	var sb strings.Builder

	title := p.Title
	if title == "" {
		title = p.ProblemID
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "Time Limit: %g sec / Memory Limit: %d MB / Score: %d\n", p.TimeLimit, p.MemoryLimit, p.Score)

	writeSection := func(heading, body string) {
		if body == "" {
			return
		}
		sb.WriteString("\n## " + heading + "\n\n" + body + "\n")
	}

	writeSection("Problem Statement", p.Statement)
	writeSection("Constraints", p.Constraints)
	writeSection("Input", p.InputFormat)
	writeSection("Output", p.OutputFormat)

	for i, s := range p.Samples {
		writeSection(fmt.Sprintf("Sample Input %d", i+1), s.Input)
		writeSection(fmt.Sprintf("Sample Output %d", i+1), s.Output)
		if s.Explanation != "" {
			writeSection(fmt.Sprintf("Sample Explanation %d", i+1), s.Explanation)
		}
	}

	writeSection("Notes", p.Notes)

	return sb.String()
}
