package answers

import (
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/cyboglabs/cybot/pkg/locale"
)

const minScore = 2

// Words that earn an answer a bonus when they appear anywhere in the message
var categoryTriggers = map[string][]string{
	"careers":     {"career", "job", "work", "hiring"},
	"products":    {"product", "service", "project"},
	"contact":     {"contact", "email", "reach", "support"},
	"internships": {"intern", "student", "learning"},
}

var (
	greetingWords = []string{"hello", "hi", "hey"}
	farewellWords = []string{"bye", "goodbye", "thanks"}
)

// Score rates how well an answer matches a lower-cased message
func Score(message string, answer Answer) int {
	score := 0
	userWords := strings.Fields(message)

	for _, keyword := range answer.Keywords {
		keyword = strings.ToLower(keyword)
		// Whole keyword phrase present
		if strings.Contains(message, keyword) {
			score += 3
		}
		// Individual keyword words present
		for _, keywordWord := range strings.Fields(keyword) {
			if containsWord(userWords, keywordWord) {
				score++
			}
		}
	}

	for _, trigger := range categoryTriggers[answer.Category] {
		if strings.Contains(message, trigger) {
			score += 2
			break
		}
	}
	return score
}

// FindBestAnswer picks the highest scoring answer, falling back to canned
// replies when nothing scores at least minScore. Ties go to the earlier answer.
func FindBestAnswer(message string, answers []Answer, localizer *i18n.Localizer) string {
	message = strings.ToLower(strings.TrimSpace(message))
	if len(answers) == 0 {
		return locale.Text(localizer, "chat-greeting", nil)
	}

	var best *Answer
	bestScore := 0
	for idx := range answers {
		score := Score(message, answers[idx])
		if score > bestScore {
			bestScore = score
			best = &answers[idx]
		}
	}
	if best != nil && bestScore >= minScore {
		return best.Answer
	}

	userWords := strings.Fields(strings.Map(stripPunctuation, message))
	switch {
	case anyWord(userWords, greetingWords):
		return locale.Text(localizer, "answer-hello", nil)
	case anyWord(userWords, farewellWords):
		return locale.Text(localizer, "answer-goodbye", nil)
	default:
		return locale.Text(localizer, "answer-rephrase", nil)
	}
}

func stripPunctuation(r rune) rune {
	if strings.ContainsRune("!?.,;:", r) {
		return ' '
	}
	return r
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

func anyWord(words []string, candidates []string) bool {
	for _, candidate := range candidates {
		if containsWord(words, candidate) {
			return true
		}
	}
	return false
}
