package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/trendwise-api/internal/domain"
)

const (
	MinContentWords       = 300
	DefaultMetaLength     = 160
	DefaultTargetSEOScore = 90.0
)

var keywordCandidatePattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// ValidateContent executa as checagens de tamanho, presença de palavras-chave e estrutura
func ValidateContent(content string, keywords []string) []domain.ValidationResult {
	return []domain.ValidationResult{
		validateMinLength(content, MinContentWords),
		validateKeywordPresence(content, normalizeKeywords(keywords)),
		validateStructure(content),
	}
}

func validateMinLength(content string, minWords int) domain.ValidationResult {
	wordCount := len(strings.Fields(content))
	if wordCount < minWords {
		return domain.ValidationResult{
			Check:   "length",
			OK:      false,
			Message: fmt.Sprintf("Content too short: %d words (minimum: %d)", wordCount, minWords),
		}
	}
	return domain.ValidationResult{Check: "length", OK: true, Message: "Length OK"}
}

func validateKeywordPresence(content string, keywords []string) domain.ValidationResult {
	lower := strings.ToLower(content)

	missing := make([]string, 0)
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}

	if float64(len(missing)) > float64(len(keywords))/2 {
		return domain.ValidationResult{
			Check:   "keywords",
			OK:      false,
			Message: fmt.Sprintf("Many keywords missing: %s", strings.Join(head(missing, 3), ", ")),
		}
	}
	return domain.ValidationResult{Check: "keywords", OK: true, Message: "Keywords present"}
}

func validateStructure(content string) domain.ValidationResult {
	hasTitle := strings.HasPrefix(strings.TrimSpace(content), "#")
	hasParagraphs := strings.Contains(content, "\n\n")
	hasHeadings := strings.Contains(content, "##")

	if !hasTitle && !hasParagraphs && !hasHeadings {
		return domain.ValidationResult{
			Check:   "structure",
			OK:      false,
			Message: "Content lacks proper structure (title, headings, paragraphs)",
		}
	}
	return domain.ValidationResult{Check: "structure", OK: true, Message: "Structure OK"}
}

// MetaDescription monta a descrição a partir das primeiras frases do texto
func MetaDescription(content string, maxLength int) string {
	if maxLength <= 3 {
		maxLength = DefaultMetaLength
	}

	var b strings.Builder
	for _, sentence := range splitSentences(content) {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		if runeLen(b.String())+runeLen(sentence) >= maxLength-3 {
			break
		}
		b.WriteString(trimmed)
		b.WriteString(". ")
	}

	description := b.String()
	if runeLen(description) > maxLength {
		description = firstRunes(description, maxLength-3) + "..."
	}

	return strings.TrimSpace(description)
}

// SEOImprovements lista o que falta para alcançar a nota alvo
func SEOImprovements(current, target float64) []string {
	gap := target - current

	switch {
	case gap <= 0:
		return []string{"Your content is already well-optimized!"}
	case gap > 40:
		return []string{
			"Major optimization needed - focus on keyword integration",
			"Improve content structure with clear headings",
			"Enhance readability and content length",
		}
	case gap > 20:
		return []string{
			"Add more relevant keywords naturally",
			"Improve meta descriptions and title tags",
			"Increase content depth and quality",
		}
	case gap > 10:
		return []string{
			"Fine-tune keyword placement",
			"Add internal and external links",
			"Optimize images with alt text",
		}
	default:
		return []string{
			"Add schema markup",
			"Improve page load speed",
			"Enhance mobile responsiveness",
		}
	}
}

// ExtractKeywords retorna as palavras (4+ letras) mais frequentes do texto.
// Empates mantêm a ordem da primeira ocorrência.
func ExtractKeywords(text string, n int) []string {
	if n <= 0 {
		return []string{}
	}

	words := keywordCandidatePattern.FindAllString(strings.ToLower(text), -1)

	order := make([]string, 0)
	freq := make(map[string]int)
	for _, w := range words {
		if _, seen := freq[w]; !seen {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	return head(order, n)
}

func runeLen(s string) int {
	return len([]rune(s))
}
