package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackSummaryUsesCategoryLead(t *testing.T) {
	got := fallbackSummarize("청약 안내", "이번 달 청약 일정이 발표됐다. 수도권 물량이 많다.", "newlywed")

	require.True(t, strings.HasPrefix(got.Summary, categoryLeads["newlywed"]))
	require.Contains(t, got.Summary, "청약 일정이 발표됐다.")
}

func TestFallbackSummaryUnknownCategory(t *testing.T) {
	got := fallbackSummarize("제목", "본문 내용이 충분히 길게 들어 있다.", "unknown-tab")

	require.True(t, strings.HasPrefix(got.Summary, defaultLead))
}

func TestFallbackSummaryEmptyContent(t *testing.T) {
	got := fallbackSummarize("제목", "", "beginner")

	require.Equal(t, categoryLeads["beginner"], got.Summary)
	require.NotEmpty(t, got.Glossary)
}

func TestFallbackGlossaryGenericWhenNothingDetected(t *testing.T) {
	got := fallbackSummarize("오늘의 날씨", "맑고 화창한 하루가 예상된다.", "beginner")

	require.Equal(t, genericGlossary, got.Glossary)
}

func TestFallbackGlossaryDedupsAliasExplanations(t *testing.T) {
	// 종부세 and 종합부동산세 share one explanation; it appears once.
	got := fallbackSummarize("종합부동산세(종부세) 개편", "종부세 부담이 줄어든다.", "beginner")

	explanation := "비싸거나 여러 채인 집에 나라가 매기는 세금 이야기예요."
	require.Equal(t, 1, strings.Count(got.Glossary, explanation))
}

func TestFallbackGlossaryIncludesThemeSentence(t *testing.T) {
	got := fallbackSummarize("전세 보증금 분쟁 늘어",
		"전세 보증금을 돌려받지 못하는 사례가 늘었다.", "beginner")

	require.Contains(t, got.Glossary, "집을 빌려 살 때")
}

func TestAnalyzeContentDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{name: "no terms", title: "날씨", content: "맑음", want: DifficultyEasy},
		{name: "one term", title: "LTV 완화", content: "내용", want: DifficultyEasy},
		{name: "three terms", title: "LTV DSR DTI 동시 조정", content: "내용", want: DifficultyMedium},
		{name: "many terms", title: "LTV DSR DTI 종부세", content: "갭투자 청약", want: DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeContent(tt.title, tt.content)
			require.Equal(t, tt.want, got.Difficulty)
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("첫 번째 문장이 여기 있다. 두 번째 문장도 충분히 길다. 세 번째 문장이다.")

	require.Len(t, got, 3)
	require.Equal(t, "첫 번째 문장이 여기 있다.", got[0])
}

func TestParseSections(t *testing.T) {
	raw := "[요약]\n요약 내용이에요.\n[쉬운 설명]\n쉬운 설명이에요."

	summaryText, glossaryText, err := parseSections(raw)

	require.NoError(t, err)
	require.Equal(t, "요약 내용이에요.", summaryText)
	require.Equal(t, "쉬운 설명이에요.", glossaryText)
}

func TestParseSectionsMissingMarker(t *testing.T) {
	_, _, err := parseSections("그냥 문단 하나만 온 응답")
	require.Error(t, err)

	_, _, err = parseSections("[쉬운 설명]\n순서가 뒤집힌 응답\n[요약]\n요약")
	require.Error(t, err)
}

func TestBuildSystemPromptEmbedsBannedTable(t *testing.T) {
	prompt := buildSystemPrompt()

	require.Contains(t, prompt, summaryMarker)
	require.Contains(t, prompt, glossaryMarker)
	for _, rule := range DefaultRules {
		require.Contains(t, prompt, rule.Pattern)
		require.Contains(t, prompt, rule.Plain)
	}
}
