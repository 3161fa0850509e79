package summary

import "strings"

// jargonEntry pairs a detectable term with a canned child-friendly
// explanation. Explanations never repeat the term itself.
type jargonEntry struct {
	Term        string
	Explanation string
}

var jargonEntries = []jargonEntry{
	{"LTV", "집을 살 때 은행이 집값의 얼마까지 돈을 빌려주는지 정해 놓은 규칙이 나와요. 집값이 1억이면 그중 일부만 빌릴 수 있어요."},
	{"DSR", "버는 돈에 비해 빚 갚는 돈이 너무 많아지지 않게 은행이 확인하는 규칙이에요."},
	{"DTI", "한 달에 버는 돈과 갚아야 할 돈을 비교해서 대출을 정하는 방법이에요."},
	{"REITs", "여러 사람이 돈을 조금씩 모아서 큰 건물에 같이 투자하는 모임 이야기예요."},
	{"리츠", "여러 사람이 돈을 조금씩 모아서 큰 건물에 같이 투자하는 모임 이야기예요."},
	{"PF", "건물을 짓기 전에 미리 큰돈을 빌리는 약속 이야기예요. 은행이 그 돈을 돌려받지 못할까 걱정하기도 해요."},
	{"프로젝트파이낸싱", "건물을 짓기 전에 미리 큰돈을 빌리는 약속 이야기예요. 은행이 그 돈을 돌려받지 못할까 걱정하기도 해요."},
	{"프로젝트 파이낸싱", "건물을 짓기 전에 미리 큰돈을 빌리는 약속 이야기예요. 은행이 그 돈을 돌려받지 못할까 걱정하기도 해요."},
	{"익스포저", "은행이나 회사가 어딘가에 빌려줘서 물려 있는 돈이 얼마나 되는지 이야기예요."},
	{"종부세", "비싸거나 여러 채인 집에 나라가 매기는 세금 이야기예요."},
	{"종합부동산세", "비싸거나 여러 채인 집에 나라가 매기는 세금 이야기예요."},
	{"갭투자", "전세를 끼면 적은 돈으로도 집을 살 수 있는데, 그런 투자 방법 이야기예요."},
	{"깡통전세", "집값이 떨어져서 맡긴 보증금을 돌려받기 어려워진 전세 이야기예요."},
	{"분양가상한제", "새 아파트 값이 너무 비싸지지 않게 나라가 상한선을 정하는 규칙이에요."},
	{"전매제한", "새로 산 집을 바로 되팔지 못하게 막는 규칙 이야기예요."},
	{"청약", "새 아파트를 사고 싶은 사람들이 미리 신청해서 순서를 기다리는 제도예요."},
	{"역세권", "지하철역에서 가까워서 다니기 편한 동네라는 뜻이에요."},
}

// theme is one coarse topical signal with its canned glossary sentence.
type theme struct {
	Name     string
	Keywords []string
	Sentence string
}

var themes = []theme{
	{
		Name:     "rent",
		Keywords: []string{"전세", "월세", "보증금", "임대"},
		Sentence: "집을 빌려 살 때 맡기거나 내는 돈 이야기가 나와요. 우리 가족이 이사할 때 꼭 알아야 하는 내용이에요.",
	},
	{
		Name:     "loan",
		Keywords: []string{"대출", "금리", "이자", "은행"},
		Sentence: "은행에서 돈을 빌릴 때 얼마나 빌릴 수 있고 이자를 얼마나 내는지에 관한 이야기예요.",
	},
	{
		Name:     "subsidy",
		Keywords: []string{"청년", "신혼", "지원", "특별공급"},
		Sentence: "나라가 젊은 사람들과 신혼부부의 집 마련을 도와주는 제도 이야기예요.",
	},
	{
		Name:     "price",
		Keywords: []string{"상승", "하락", "급등", "급락", "오름", "내림"},
		Sentence: "집값이 오르거나 내리는 이야기예요. 값이 움직이면 집을 사고파는 사람들의 마음도 바뀌어요.",
	},
	{
		Name:     "contract",
		Keywords: []string{"계약", "임차인", "갱신", "보호"},
		Sentence: "집을 빌리는 사람을 지켜 주는 약속과 규칙 이야기예요. 계약할 때 손해 보지 않게 도와줘요.",
	},
	{
		Name:     "tax",
		Keywords: []string{"세금", "과세", "공제"},
		Sentence: "집과 관련해서 나라에 내는 세금 이야기예요.",
	},
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type contentAnalysis struct {
	Terms      []jargonEntry
	Themes     []theme
	Difficulty string
}

// analyzeContent scans title+content case-insensitively for known
// jargon and thematic signals. Difficulty is informational only.
func analyzeContent(title, content string) contentAnalysis {
	text := strings.ToLower(title + " " + content)

	var analysis contentAnalysis
	for _, entry := range jargonEntries {
		if strings.Contains(text, strings.ToLower(entry.Term)) {
			analysis.Terms = append(analysis.Terms, entry)
		}
	}
	for _, th := range themes {
		for _, kw := range th.Keywords {
			if strings.Contains(text, kw) {
				analysis.Themes = append(analysis.Themes, th)
				break
			}
		}
	}

	switch n := len(analysis.Terms); {
	case n <= 1:
		analysis.Difficulty = DifficultyEasy
	case n <= 3:
		analysis.Difficulty = DifficultyMedium
	default:
		analysis.Difficulty = DifficultyHard
	}

	return analysis
}
