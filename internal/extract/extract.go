// Package extract turns notice sources (plain-text files, HTML pages, mail
// bodies) into plain text ready for summarization.
package extract

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FromFile loads a notice body from disk. HTML files are distilled to plain
// text; anything else is treated as already-plain text.
func FromFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FromHTML(string(raw))
	default:
		return string(raw), nil
	}
}

// FromHTML extracts readable text from an HTML document. Readability locates
// the main content first; short notice pages that readability rejects fall
// back to a whole-document walk.
func FromHTML(html string) (string, error) {
	base, err := url.Parse("http://localhost/notice")
	if err != nil {
		return "", err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), base)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return HTMLToText(article.Content)
	}
	return HTMLToText(html)
}

// HTMLToText flattens HTML into newline-separated text. Anchor targets are
// appended after the anchor text so link extraction still sees the URLs.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script,style").Remove()

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasPrefix(href, "http") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if strings.Contains(text, href) {
			return
		}
		s.SetText(strings.TrimSpace(text + " " + href))
	})

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,td,pre,blockquote").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	// Mail clients often emit bare div soup with no block tags at all.
	if len(lines) == 0 {
		if text := normalizeText(doc.Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
