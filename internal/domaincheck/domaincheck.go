// Package domaincheck classifies email addresses as institutional or personal.
package domaincheck

import "strings"

// institutionalDomains lists recognized university and institutional domains.
// Matching also covers subdomains of these entries.
var institutionalDomains = []string{
	"connect.ust.hk",
	"connect.hku.hk",
	"link.cuhk.edu.hk",
	"connect.polyu.hk",
	"life.hkbu.edu.hk",
	"connect.hkust-gz.edu.cn",
	"my.cityu.edu.hk",
	"s.hkmu.edu.hk",
}

// academicSuffixes cover the common academic TLD patterns. A domain matches
// when it ends in one of these labels (e.g. "university.edu", "cs.ox.ac.uk").
var academicSuffixes = []string{
	".edu",
	".ac.uk",
	".ac.jp",
	".ac.kr",
	".ac.nz",
	".edu.hk",
	".edu.cn",
	".edu.au",
	".edu.sg",
	".edu.tw",
	".edu.my",
	".edu.in",
}

// IsInstitutionalEmail reports whether the email's domain belongs to a
// recognized university or institution. Pure classification: no network call,
// nothing cached, re-evaluated on every gated action.
func IsInstitutionalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" {
		return false
	}

	for _, known := range institutionalDomains {
		if domain == known || strings.HasSuffix(domain, "."+known) {
			return true
		}
	}

	for _, suffix := range academicSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}

	return false
}
