package fetcher

import (
	"context"
	"regexp"
	"strings"
)

var redirectRe = regexp.MustCompile(`\(:redirect\s+(\S+)\s+quiet=1\s*:\)`)

// redirectTarget extracts the target page name from an embedded redirect
// directive, with the namespace prefix (e.g. "Main.") stripped. Returns
// "" when the markdown carries no directive.
func redirectTarget(markdown string) string {
	m := redirectRe.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	target := m[1]
	if i := strings.Index(target, "."); i >= 0 {
		target = target[i+1:]
	}
	return target
}

// ResolveRedirect honors at most one redirect hop. If markdown carries a
// redirect directive, the target page on siteURL is fetched and its markdown
// and URL are returned; otherwise the input markdown and pageURL are returned
// unchanged. A failed fetch of the redirect target is a hard failure for the
// article.
func (f *Fetcher) ResolveRedirect(ctx context.Context, markdown, pageURL, siteURL string) (string, string, error) {
	target := redirectTarget(markdown)
	if target == "" {
		return markdown, pageURL, nil
	}

	finalURL := strings.TrimSuffix(siteURL, "/") + "/" + target
	body, err := f.PageSource(ctx, finalURL)
	if err != nil {
		return "", "", err
	}
	return body, finalURL, nil
}
