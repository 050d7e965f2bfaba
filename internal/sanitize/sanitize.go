// Package sanitize makes untrusted user-pasted HTML safer to render inside a
// sandboxed iframe. The transformations are lexical (regex-based), not a full
// HTML parse: they tolerate malformed markup and never fail, at the cost of
// mis-handling iframe tags whose quoted attribute values contain '>'.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	eventHandlerRe = regexp.MustCompile(`(?i)\s*\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]*)`)
	iframeTagRe    = regexp.MustCompile(`(?is)<iframe\s([^>]*?)\s*>`)
	sandboxAttrRe  = regexp.MustCompile(`(?i)sandbox\s*=\s*["']([^"']*)["']`)
	scriptBlockRe  = regexp.MustCompile(`(?is)<script([^>]*)>(.*?)</script>`)
	tailwindCDNRe  = regexp.MustCompile(`(?i)cdn\.tailwindcss\.com`)
)

const safeDOMHelper = `
// Guard helper for scripts that assume elements exist at parse time.
function safeDOM(selector, callback) {
  const element = document.querySelector(selector);
  if (element) {
    callback(element);
  }
}

// Original script
`

const tailwindWarning = `
<!--
Warning: cdn.tailwindcss.com is not recommended for production use.
Consider building an optimized bundle with the PostCSS plugin or the Tailwind CLI.
See: https://tailwindcss.com/docs/installation
-->
`

// SafeHTML runs the full sanitization pipeline in fixed order: event-handler
// stripping, iframe sandbox enforcement, defensive script wrapping, and the
// Tailwind CDN advisory. Empty input yields empty output.
func SafeHTML(html string) string {
	if html == "" {
		return ""
	}

	safe := StripEventHandlers(html)
	safe = EnforceIframeSandbox(safe)
	safe = WrapScripts(safe)
	safe = AddTailwindWarning(safe)
	return safe
}

// StripEventHandlers removes inline on* event-handler attributes
// (onclick, onload, ...) case-insensitively.
func StripEventHandlers(html string) string {
	return eventHandlerRe.ReplaceAllString(html, "")
}

// EnforceIframeSandbox rewrites every <iframe> open tag so that embedded
// content can never combine allow-scripts with allow-same-origin: an existing
// sandbox attribute has the allow-same-origin token removed (remaining tokens
// keep their order, single-space separated), and a missing sandbox attribute
// is appended as sandbox="allow-scripts allow-forms".
func EnforceIframeSandbox(html string) string {
	return iframeTagRe.ReplaceAllStringFunc(html, func(tag string) string {
		attrs := iframeTagRe.FindStringSubmatch(tag)[1]
		if !sandboxAttrRe.MatchString(attrs) {
			return "<iframe " + attrs + ` sandbox="allow-scripts allow-forms">`
		}
		return sandboxAttrRe.ReplaceAllStringFunc(tag, func(attr string) string {
			value := sandboxAttrRe.FindStringSubmatch(attr)[1]
			return `sandbox="` + stripSandboxToken(value, "allow-same-origin") + `"`
		})
	})
}

func stripSandboxToken(value, token string) string {
	kept := make([]string, 0, 4)
	for _, t := range strings.Fields(value) {
		if strings.EqualFold(t, token) {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// WrapScripts prepends the safeDOM guard helper to every inline <script>
// block. User scripts frequently dereference elements that do not exist yet;
// the helper is made available, not force-applied, so the original script
// body is left untouched. External (src-only) script tags pass through
// unchanged so references like the Tailwind CDN stay visible to later steps.
func WrapScripts(html string) string {
	return scriptBlockRe.ReplaceAllStringFunc(html, func(block string) string {
		m := scriptBlockRe.FindStringSubmatch(block)
		attrs, body := m[1], m[2]
		if strings.TrimSpace(body) == "" {
			return block
		}
		return "<script" + attrs + ">" + safeDOMHelper + body + "\n</script>"
	})
}

// ContainsTailwindCDN reports whether the content references the hosted
// Tailwind CSS CDN build.
func ContainsTailwindCDN(html string) bool {
	return tailwindCDNRe.MatchString(html)
}

// AddTailwindWarning prepends an advisory comment when the content uses the
// Tailwind CDN build. Purely informational; the content itself is unchanged.
func AddTailwindWarning(html string) string {
	if !ContainsTailwindCDN(html) {
		return html
	}
	return tailwindWarning + html
}
