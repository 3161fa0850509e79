package summary

import (
	"fmt"
	"strings"
)

const summaryMarker = "[요약]"
const glossaryMarker = "[쉬운 설명]"

const systemPromptHeader = `당신은 부동산 뉴스를 쉬운 말로 풀어 주는 편집자입니다.

규칙:
1. 먼저 ` + summaryMarker + ` 아래에 3~4줄로 기사 내용을 요약하세요. 전문 용어 없이 써야 합니다.
2. 이어서 ` + glossaryMarker + ` 아래에 어린이에게 설명하듯 2~3줄로 풀어 쓰세요. "-이에요/-해요"체를 사용하세요.
3. 아래 금지 용어는 절대 그대로 쓰지 말고 오른쪽 표현으로 바꿔 쓰세요.

금지 용어 표:`

// buildSystemPrompt embeds the banned-term table straight from the
// simplifier rules so prompt and post-processing never drift apart.
func buildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(systemPromptHeader)
	sb.WriteString("\n")
	for _, rule := range DefaultRules {
		sb.WriteString(fmt.Sprintf("- %s → %s\n", rule.Pattern, rule.Plain))
	}
	return sb.String()
}

func buildUserPrompt(title, content, category string) string {
	return fmt.Sprintf("분류: %s\n제목: %s\n본문: %s", category, title, content)
}

// parseSections splits an LLM response on the two fixed markers.
func parseSections(raw string) (string, string, error) {
	si := strings.Index(raw, summaryMarker)
	gi := strings.Index(raw, glossaryMarker)
	if si < 0 || gi < 0 || gi < si {
		return "", "", fmt.Errorf("response missing section markers")
	}

	summaryText := strings.TrimSpace(raw[si+len(summaryMarker) : gi])
	glossaryText := strings.TrimSpace(raw[gi+len(glossaryMarker):])

	if summaryText == "" || glossaryText == "" {
		return "", "", fmt.Errorf("response has empty section")
	}

	return summaryText, glossaryText, nil
}
