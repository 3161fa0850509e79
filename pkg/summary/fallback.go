package summary

import "strings"

const maxSummarySentences = 2
const maxGlossaryTerms = 3

// categoryLeads open the deterministic summary per audience tab.
var categoryLeads = map[string]string{
	"beginner": "집을 사거나 빌리는 게 처음인 분들을 위한 소식이에요.",
	"newlywed": "신혼부부와 청년의 집 마련에 관한 소식이에요.",
	"investor": "부동산 투자 흐름에 관한 소식이에요.",
}

const defaultLead = "우리 동네 집과 돈에 관한 소식이에요."

const genericGlossary = "이 뉴스는 집과 돈에 관한 이야기예요. 쉽게 말해, 집값이나 나라의 정책이 바뀌면 우리 생활에도 영향을 줄 수 있다는 내용이에요."

// fallbackSummarize is the terminal strategy: pure string work, no
// network, cannot fail.
func fallbackSummarize(title, content, category string) Result {
	analysis := analyzeContent(title, content)

	return Result{
		Summary:  buildFallbackSummary(content, category),
		Glossary: buildFallbackGlossary(analysis),
	}
}

func buildFallbackSummary(content, category string) string {
	lead, ok := categoryLeads[category]
	if !ok {
		lead = defaultLead
	}

	sentences := splitSentences(content)
	if len(sentences) > maxSummarySentences {
		sentences = sentences[:maxSummarySentences]
	}
	if len(sentences) == 0 {
		return lead
	}

	return lead + " " + strings.Join(sentences, " ")
}

func buildFallbackGlossary(analysis contentAnalysis) string {
	var parts []string

	terms := analysis.Terms
	if len(terms) > maxGlossaryTerms {
		terms = terms[:maxGlossaryTerms]
	}
	seen := make(map[string]struct{})
	for _, term := range terms {
		// Aliases of the same concept share an explanation; emit once.
		if _, dup := seen[term.Explanation]; dup {
			continue
		}
		seen[term.Explanation] = struct{}{}
		parts = append(parts, term.Explanation)
	}

	for _, th := range analysis.Themes {
		if len(parts) >= maxGlossaryTerms+1 {
			break
		}
		parts = append(parts, th.Sentence)
	}

	if len(parts) == 0 {
		return genericGlossary
	}

	return strings.Join(parts, " ")
}

// splitSentences cuts on Korean sentence endings first, then plain
// periods, skipping fragments too short to carry meaning.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	rest := text
	for rest != "" {
		idx := strings.Index(rest, "다. ")
		end := 0
		switch {
		case idx >= 0:
			end = idx + len("다.")
		default:
			if p := strings.Index(rest, ". "); p >= 0 {
				end = p + 1
			} else {
				end = len(rest)
			}
		}

		sentence := strings.TrimSpace(rest[:end])
		rest = strings.TrimSpace(rest[end:])

		if len([]rune(sentence)) >= 8 {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}
