package mdocx

import "strings"

// structuredIndent is the indent width per nesting level for JSON and YAML
const structuredIndent = "  "

// NormalizeCode trims leading and trailing blank lines and cleans up the rest.
// JSON and YAML lines are re-indented from bracket depth; other languages only
// have runs of blank lines collapsed to one. The input slice is not modified.
func NormalizeCode(lines []string, language string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	lines = lines[start:end]

	switch strings.ToLower(language) {
	case "json", "yaml":
		return normalizeStructured(lines)
	}

	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if isBlank(line) {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return out
}

// normalizeStructured indents each line by the number of brackets opened on
// previous lines. A line ending in { or [ opens a level; otherwise a line
// starting with } or ] closes one. Blank lines are dropped unless they separate
// a closed object from the next "key": { entry.
func normalizeStructured(lines []string) []string {
	out := make([]string, 0, len(lines))
	depth := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if separatesObjects(lines, i) {
				out = append(out, "")
			}
			continue
		}

		level := depth
		if closesLevel(trimmed) {
			level--
		}
		if level < 0 {
			level = 0
		}
		out = append(out, strings.Repeat(structuredIndent, level)+trimmed)

		if opensLevel(trimmed) {
			depth++
		} else if closesLevel(trimmed) && depth > 0 {
			depth--
		}
	}
	return out
}

func separatesObjects(lines []string, i int) bool {
	if i == 0 || i == len(lines)-1 {
		return false
	}
	prev := strings.TrimSpace(lines[i-1])
	next := strings.TrimSpace(lines[i+1])
	return (strings.HasSuffix(prev, "}") || strings.HasSuffix(prev, "},")) &&
		strings.HasPrefix(next, `"`) && strings.Contains(next, ": {")
}

func opensLevel(trimmed string) bool {
	return strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[")
}

func closesLevel(trimmed string) bool {
	return strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
