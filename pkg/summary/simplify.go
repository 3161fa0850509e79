package summary

import (
	"regexp"
	"strings"
)

// Rule rewrites one jargon phrase into plain language.
type Rule struct {
	Pattern string
	Plain   string
}

// DefaultRules is applied in declaration order. Order matters: longer
// phrases come before their abbreviations so "프로젝트 파이낸싱(PF)"
// collapses cleanly, and no Plain text may contain a Pattern declared
// later in the list (TestRulesDoNotReSubstitute guards this).
var DefaultRules = []Rule{
	{"프로젝트 파이낸싱", "건물 지을 돈을 미리 빌리는 것"},
	{"프로젝트파이낸싱", "건물 지을 돈을 미리 빌리는 것"},
	{"종합부동산세", "비싼 집에 붙는 세금"},
	{"종부세", "비싼 집에 붙는 세금"},
	{"취득세", "집을 살 때 내는 세금"},
	{"양도소득세", "집을 팔아 번 돈에 붙는 세금"},
	{"양도세", "집을 팔아 번 돈에 붙는 세금"},
	{"우량 채권", "떼일 걱정이 적은, 빌려준 돈 증서"},
	{"익스포저", "물려 있는 돈"},
	{"자산건전성", "회사 살림이 얼마나 튼튼한지"},
	{"레버리지", "남의 돈을 빌려 하는 투자"},
	{"리츠", "여러 사람이 돈을 모아 건물에 투자하는 모임"},
	{"REITs", "여러 사람이 돈을 모아 건물에 투자하는 모임"},
	{"REIT", "여러 사람이 돈을 모아 건물에 투자하는 모임"},
	{"LTV", "집값에서 빌릴 수 있는 돈의 비율"},
	{"DSR", "버는 돈에서 빚 갚는 데 쓰는 몫"},
	{"DTI", "소득과 견준 빚 갚을 능력"},
	{"PF", "건물 지을 돈을 미리 빌리는 것"},
	{"분양가상한제", "새 아파트 값에 상한선을 두는 규칙"},
	{"전매제한", "산 집을 바로 되팔지 못하게 막는 규칙"},
	{"깡통전세", "보증금을 돌려받기 어려운 전세"},
	{"역전세", "전셋값이 떨어져 보증금 돌려주기 힘든 상황"},
	{"갭투자", "전세를 끼고 적은 돈으로 집을 사는 것"},
}

// Simplify applies the rules in order, case-insensitively. ASCII
// abbreviations match whole words only so "PF" never fires inside an
// unrelated token.
func Simplify(text string, rules []Rule) string {
	if text == "" {
		return text
	}
	for _, rule := range rules {
		text = compileRule(rule).ReplaceAllString(text, rule.Plain)
	}
	return text
}

func compileRule(rule Rule) *regexp.Regexp {
	pattern := regexp.QuoteMeta(rule.Pattern)
	if isASCIIWord(rule.Pattern) {
		pattern = `\b` + pattern + `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > 'z' || (!('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z')) {
			return false
		}
	}
	return s != ""
}

// ContainsJargon reports whether any rule pattern still appears in the
// text; used by tests and as a cheap sanity probe.
func ContainsJargon(text string, rules []Rule) bool {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lower, strings.ToLower(rule.Pattern)) {
			return true
		}
	}
	return false
}
