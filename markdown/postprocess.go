package markdown

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberedLinePattern = regexp.MustCompile(`^(\s*)(\d+)\. (.*)$`)
	bulletLinePattern   = regexp.MustCompile(`^(\s*)[*+-] `)
)

// PostProcessor is the whole-document cleanup pass over the concatenated
// per-page Markdown: ordered-list renumbering, soft-wrap merging, and
// blank-line collapsing. Process is idempotent.
type PostProcessor struct{}

// NewPostProcessor creates a post-processor.
func NewPostProcessor() *PostProcessor {
	return &PostProcessor{}
}

// Process runs the three cleanup passes in order and returns the final
// document.
func (p *PostProcessor) Process(doc string) string {
	lines := strings.Split(doc, "\n")
	lines = renumberLists(lines)
	lines = mergeSoftWraps(lines)
	lines = collapseBlanks(lines)
	return strings.Join(lines, "\n")
}

// renumberLists replaces the renderer's placeholder numerals with proper
// per-depth counters. Depth is the leading-space count divided by two.
// Entering a deeper depth resets that depth's counter; leaving list context
// (a non-list, non-blank line) clears all counters.
func renumberLists(lines []string) []string {
	out := make([]string, len(lines))
	counters := make(map[int]int)
	prevDepth := -1

	for i, line := range lines {
		if m := numberedLinePattern.FindStringSubmatch(line); m != nil {
			depth := len(m[1]) / 2
			if depth > prevDepth {
				counters[depth] = 0
			}
			counters[depth]++
			out[i] = m[1] + strconv.Itoa(counters[depth]) + ". " + m[3]
			prevDepth = depth
			continue
		}

		out[i] = line

		if strings.TrimSpace(line) == "" || bulletLinePattern.MatchString(line) {
			continue
		}

		// Non-list content ends the list context.
		counters = make(map[int]int)
		prevDepth = -1
	}

	return out
}

// mergeSoftWraps joins lines that are really one sentence wrapped across
// lines. A line merges into its predecessor when neither is blank, the
// predecessor neither ends with clause punctuation nor starts with a block
// marker, and the line itself does not start with an upper-case letter
// (except the word "I"). Numbered-list lines never merge in either
// direction; they stay distinct for renumbering.
func mergeSoftWraps(lines []string) []string {
	var out []string
	for _, line := range lines {
		if len(out) > 0 && canMergeWrap(out[len(out)-1], line) {
			prev := out[len(out)-1]
			if strings.HasSuffix(prev, " ") || strings.HasPrefix(line, " ") {
				out[len(out)-1] = prev + line
			} else {
				out[len(out)-1] = prev + " " + line
			}
			continue
		}
		out = append(out, line)
	}
	return out
}

func canMergeWrap(prev, cur string) bool {
	prevTrim := strings.TrimSpace(prev)
	curTrim := strings.TrimSpace(cur)
	if prevTrim == "" || curTrim == "" {
		return false
	}

	last := prevTrim[len(prevTrim)-1]
	if strings.IndexByte(".!?:;", last) >= 0 {
		return false
	}

	if startsWithBlockMarker(prevTrim) || numberedLinePattern.MatchString(prevTrim) {
		return false
	}
	if numberedLinePattern.MatchString(curTrim) {
		return false
	}

	if startsUpper(curTrim) &&
		!strings.HasPrefix(curTrim, "I ") && !strings.HasPrefix(curTrim, "I'") {
		return false
	}

	return true
}

// startsWithBlockMarker reports whether a trimmed line opens a Markdown
// block: heading, list, quote, fence, pipe table, or rule characters.
func startsWithBlockMarker(text string) bool {
	if strings.HasPrefix(text, "```") {
		return true
	}
	return strings.IndexByte("#*->|=~_", text[0]) >= 0
}

func startsUpper(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}
	return false
}

// collapseBlanks reduces every run of consecutive blank lines to a single
// blank line.
func collapseBlanks(lines []string) []string {
	var out []string
	blank := false
	for _, line := range lines {
		isBlank := strings.TrimSpace(line) == ""
		if isBlank && blank {
			continue
		}
		blank = isBlank
		out = append(out, line)
	}
	return out
}
