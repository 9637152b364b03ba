package notes

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	extractTimeout  = 15 * time.Second
	extractMaxChars = 20000
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractFromURL fetches a page and returns its visible text, capped at
// extractMaxChars. Static HTML only; script-rendered pages are out of
// scope.
func ExtractFromURL(ctx context.Context, targetURL string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", targetURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: bad status %d", targetURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", targetURL, err)
	}
	doc.Find("script, style, noscript, nav, footer").Remove()

	text := doc.Find("body").Text()
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if text == "" {
		return "", fmt.Errorf("no text content at %s", targetURL)
	}
	if len(text) > extractMaxChars {
		text = text[:extractMaxChars]
	}
	return text, nil
}
