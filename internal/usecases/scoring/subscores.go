package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trendwise-api/internal/domain"
)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

const defaultSemanticScore = 75.0

// KeywordDensityScore avalia a densidade das 5 primeiras palavras-chave.
// Densidade ótima entre 1% e 3%.
func KeywordDensityScore(content string, keywords []string) float64 {
	lower := strings.ToLower(content)
	totalWords := len(strings.Fields(lower))
	if totalWords == 0 {
		return 0
	}

	count := 0
	for _, kw := range head(keywords, 5) {
		count += strings.Count(lower, strings.ToLower(kw))
	}

	density := float64(count) / float64(totalWords) * 100

	switch {
	case density >= 1 && density <= 3:
		return 100
	case density < 1:
		return density * 100
	default:
		return math.Max(0, 100-(density-3)*20)
	}
}

// ReadabilityScore aplica o Flesch Reading Ease limitado a [0,100]
func ReadabilityScore(content string) float64 {
	sentences := len(splitSentences(content))
	words := strings.Fields(content)
	if sentences == 0 || len(words) == 0 {
		return 50
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordCount := float64(len(words))
	score := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)

	return math.Max(0, math.Min(100, score))
}

// CountSyllables aproxima sílabas contando grupos de vogais
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	previousWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}

	// "e" final geralmente é mudo
	if strings.HasSuffix(word, "e") {
		count--
	}

	return max(1, count)
}

// ContentLengthScore favorece textos entre 1500 e 2500 palavras
func ContentLengthScore(content string) float64 {
	wordCount := float64(len(strings.Fields(content)))

	switch {
	case wordCount >= 1500 && wordCount <= 2500:
		return 100
	case wordCount < 1500:
		return wordCount / 1500 * 100
	default:
		return math.Max(50, 100-(wordCount-2500)/50)
	}
}

// PlacementScore soma pontos por palavra-chave no título, na abertura e nos cabeçalhos
func PlacementScore(content string, keywords []string) float64 {
	score := 0.0

	lines := strings.Split(content, "\n")
	firstLine := strings.ToLower(lines[0])
	if containsAny(firstLine, head(keywords, 3)) {
		score += 40
	}

	firstParagraph := strings.ToLower(firstRunes(content, 200))
	if containsAny(firstParagraph, head(keywords, 3)) {
		score += 30
	}

	headings := make([]string, 0)
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			headings = append(headings, line)
		}
	}
	if containsAny(strings.ToLower(strings.Join(headings, " ")), head(keywords, 5)) {
		score += 30
	}

	return math.Min(100, score)
}

// SemanticRelevanceScore mede o uso das palavras-chave e de suas partes.
// Sem palavras-chave não há base de comparação e a nota padrão é usada.
func SemanticRelevanceScore(content string, keywords []string) float64 {
	if len(keywords) == 0 {
		logrus.Debug("scoring: sem palavras-chave, usando relevância semântica padrão")
		return defaultSemanticScore
	}

	lower := strings.ToLower(content)
	variations := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(lower, kw) {
			variations += 2
		}
		for _, part := range strings.Fields(kw) {
			if strings.Contains(lower, part) {
				variations++
				break
			}
		}
	}

	return math.Min(100, float64(variations)/float64(len(keywords))*50+50)
}

// Metrics conta palavras, segmentos de frase e parágrafos
func Metrics(content string) domain.ContentMetrics {
	return domain.ContentMetrics{
		WordCount:      len(strings.Fields(content)),
		SentenceCount:  len(splitSentences(content)),
		ParagraphCount: len(strings.Split(content, "\n\n")),
	}
}

// splitSentences divide em sequências de . ! ? mantendo segmentos vazios
func splitSentences(content string) []string {
	return sentenceSplitter.Split(content, -1)
}

func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	return normalized
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
