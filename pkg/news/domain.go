package news

import "strings"

// trustedHosts are editorially-curated publishers. A host matching any
// substring here is accepted without further checks and may skip the
// liveness probe.
var trustedHosts = []string{
	"yna.co.kr",
	"yonhapnewstv.co.kr",
	"news.naver.com",
	"land.naver.com",
	"chosun.com",
	"joongang.co.kr",
	"donga.com",
	"hani.co.kr",
	"khan.co.kr",
	"hankyung.com",
	"mk.co.kr",
	"sedaily.com",
	"edaily.co.kr",
	"fnnews.com",
	"newsis.com",
	"asiae.co.kr",
	"heraldcorp.com",
	"mt.co.kr",
	"kbs.co.kr",
	"sbs.co.kr",
	"imbc.com",
	"ytn.co.kr",
	"newspim.com",
	"dailian.co.kr",
	"r114.com",
}

// lowTrustPatterns mark generic hosting platforms whose results are
// mostly mirrored or promotional posts.
var lowTrustPatterns = []string{
	".tistory.com",
	"blog.naver.com",
	"post.naver.com",
	"cafe.naver.com",
	"cafe.daum.net",
	"brunch.co.kr",
	".blogspot.com",
	".egloos.com",
	".wordpress.com",
}

// IsAcceptableDomain biases results toward known publishers: trusted
// hosts pass unconditionally, generic blog hosts are rejected, and
// anything unclassified gets the benefit of the doubt.
func IsAcceptableDomain(host string) bool {
	host = strings.ToLower(host)

	for _, trusted := range trustedHosts {
		if strings.Contains(host, trusted) {
			return true
		}
	}

	for _, pattern := range lowTrustPatterns {
		if strings.HasSuffix(host, pattern) || strings.Contains(host, pattern) {
			return false
		}
	}

	return true
}

// isTrustedHost reports allow-list membership only, for liveness bypass.
func isTrustedHost(host string) bool {
	host = strings.ToLower(host)
	for _, trusted := range trustedHosts {
		if strings.Contains(host, trusted) {
			return true
		}
	}
	return false
}
