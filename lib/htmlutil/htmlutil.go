package htmlutil

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips non-printable runes, trims the edges and collapses
// inner whitespace runs into a single space. scraped cell text tends to
// carry &nbsp; and stray newlines.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = innerWhitespace.ReplaceAllString(s, " ")
	s = removeNonPrintable(s)
	return strings.Trim(s, " ")
}

// QueryParam extracts a single query parameter from an href attribute.
// Returns "" when the href does not parse or the key is absent.
func QueryParam(href, key string) string {
	link, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return link.Query().Get(key)
}

// SplitBr returns the text of a selection's first node split into lines
// at <br> boundaries, each line cleaned with CleanText. Empty lines are
// dropped.
func SplitBr(sel *goquery.Selection) []string {
	if len(sel.Nodes) == 0 {
		return nil
	}

	var lines []string
	var buffer bytes.Buffer

	flush := func() {
		line := CleanText(buffer.String())
		if line != "" {
			lines = append(lines, line)
		}
		buffer.Reset()
	}

	child := sel.Nodes[0].FirstChild
	for child != nil {
		if child.Type == html.ElementNode && child.Data == "br" {
			flush()
		} else {
			getTextRecursive(child, &buffer)
		}
		child = child.NextSibling
	}
	flush()

	return lines
}
