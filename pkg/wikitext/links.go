package wikitext

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	refDefRe  = regexp.MustCompile(`^\[(\d+)\]:\s*(\S+)\s*$`)
	refLinkRe = regexp.MustCompile(`\[([^\[\]]*)\]\[(\d+)\]`)
)

// collectRefs scans every line for reference-link definitions of the form
// "[N]: <url>" and builds a number -> URL map. When urlPrefix is non-empty,
// only definitions whose URL begins with that prefix are accepted.
func collectRefs(lines []string, urlPrefix string) map[int]string {
	refs := make(map[int]string)
	for _, line := range lines {
		m := refDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if urlPrefix != "" && !strings.HasPrefix(m[2], urlPrefix) {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		refs[n] = m[2]
	}
	return refs
}

// resolveRefLinks rewrites reference-style links "[text][N]" inside a
// paragraph. Internal anchors (URLs starting with "#") become plain text with
// the link removed; external URLs become inline "[text](url)" links. A link
// whose reference number has no definition also falls back to plain text.
// Bare footnote markers "[N]" are left in place; they are stripped later by
// CountWords and by the typing target derivation.
func resolveRefLinks(text string, refs map[int]string) string {
	return refLinkRe.ReplaceAllStringFunc(text, func(match string) string {
		m := refLinkRe.FindStringSubmatch(match)
		label := m[1]
		n, _ := strconv.Atoi(m[2])
		target, ok := refs[n]
		if !ok || strings.HasPrefix(target, "#") {
			return label
		}
		return "[" + label + "](" + target + ")"
	})
}
