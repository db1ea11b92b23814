package aitools

import (
	"regexp"
	"strings"
)

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	spaces       = regexp.MustCompile(`\s+`)
	longDashes   = regexp.MustCompile(`[–—]`)
	durationJunk = regexp.MustCompile(`[^a-z0-9+\-> ]+`)
	spacedHyphen = regexp.MustCompile(` ?- ?`)
	hourWord     = regexp.MustCompile(`(^|[^a-z])(?:hours?|hrs?)\b`)
)

// NormalizeHeader canonicalizes a column title for fuzzy matching:
// no BOM, lower case, runs of anything but [a-z0-9] become one space.
func NormalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeDuration canonicalizes a free-text "time saved" answer so that
// "1 – 3 Hours", "1-3 hrs" and "1-3 hour" all read "1-3 hour".
//
// Characters are stripped before hour words are folded so a second pass sees
// the same word boundaries as the first.
func NormalizeDuration(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = longDashes.ReplaceAllString(s, "-")
	s = durationJunk.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	s = spacedHyphen.ReplaceAllString(s, "-")
	s = hourWord.ReplaceAllString(s, "${1}hour")
	return strings.TrimSpace(s)
}

// NormalizeToolName only trims: tool names are proper nouns.
func NormalizeToolName(s string) string {
	return strings.TrimSpace(s)
}

// ToolKey is the lookup key for a tool name, insensitive to case and punctuation.
func ToolKey(s string) string {
	return NormalizeHeader(NormalizeToolName(s))
}

// durationSynonyms folds normalized variant phrasings onto the canonical
// bucket they mean. Keys and values are already normalized.
var durationSynonyms = map[string]string{
	"0-1 hour":      "less than 1 hour",
	"under 1 hour":  "less than 1 hour",
	"up to 1 hour":  "less than 1 hour",
	"1 to 2 hour":   "1-2 hour",
	"1 to 3 hour":   "1-3 hour",
	"3 to 5 hour":   "3-5 hour",
	">5 hour":       "more than 5 hour",
	"> 5 hour":      "more than 5 hour",
	"5+ hour":       "more than 5 hour",
	"over 5 hour":   "more than 5 hour",
	"no time saved": "i do not feel they save me time",
	"none":          "i do not feel they save me time",
}

// CanonicalDuration normalizes a duration phrase and folds known synonyms
// onto their bucket.
func CanonicalDuration(s string) string {
	n := NormalizeDuration(s)
	if canon, ok := durationSynonyms[n]; ok {
		return canon
	}
	return n
}

// toolAliases maps raw tool spellings (by ToolKey) to a display name.
var toolAliases = map[string]string{
	ToolKey("ChatGPT (OpenAI)"):                    "ChatGPT Plus",
	ToolKey("Cursor CLI"):                          "Cursor",
	ToolKey("Codex CLI"):                           "Codex (OpenAI)",
	ToolKey("Gemini (https://gemini.google.com/)"): "Gemini",
	ToolKey("VSCode"):                              "VS Code",
}

// CanonicalTool trims a tool mention and applies the alias table.
func CanonicalTool(s string) string {
	name := NormalizeToolName(s)
	if alias, ok := toolAliases[ToolKey(name)]; ok {
		return alias
	}
	return name
}
