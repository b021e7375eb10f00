package scrapers

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cyboglabs/cybot/pkg/faq"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ScrapeFAQ reads FAQ entries from the public FAQ page. Each .faq-section
// names its category in data-category or its heading, and holds .faq-item
// elements with a question and an answer.
func ScrapeFAQ(r io.Reader) ([]faq.Entry, error) {
	var entries []faq.Entry
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return entries, err
	}

	seen := map[string]bool{}
	document.Find(".faq-section").Each(func(_ int, section *goquery.Selection) {
		category, ok := section.Attr("data-category")
		if !ok || strings.TrimSpace(category) == "" {
			category = section.Find("h2, h3").First().Text()
		}
		category = cleanText(category)

		section.Find(".faq-item").Each(func(_ int, item *goquery.Selection) {
			question := cleanText(item.Find(".faq-question").First().Text())
			answer := cleanText(item.Find(".faq-answer").First().Text())
			if question == "" || answer == "" {
				return
			}
			id, _ := item.Attr("data-faq-id")
			id = strings.TrimSpace(id)
			if id == "" || seen[id] {
				id = fmt.Sprintf("faq-%d", len(entries)+1)
			}
			seen[id] = true
			entries = append(entries, faq.Entry{
				ID:       id,
				Category: category,
				Question: question,
				Answer:   answer,
			})
		})
	})
	return entries, nil
}
