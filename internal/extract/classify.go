package extract

import (
	"net/url"

	"github.com/rojanmagar2001/linkverify/internal/domain"
)

// Classify treats raw as an external link when it parses as an absolute URL.
// A one-letter scheme is a Windows drive ("C:/docs"), so it stays local.
func Classify(raw string) domain.Link {
	if u, err := url.Parse(raw); err == nil && len(u.Scheme) > 1 {
		return domain.Link{Kind: domain.LinkKindExternal, Target: raw, Raw: raw}
	}
	return domain.Link{Kind: domain.LinkKindLocal, Target: raw, Raw: raw}
}

func ClassifyAll(raws []string) []domain.Link {
	out := make([]domain.Link, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Classify(raw))
	}
	return out
}

// Split separates links into local paths and external URLs, keeping order.
func Split(links []domain.Link) (local, external []string) {
	local = []string{}
	external = []string{}
	for _, l := range links {
		if l.IsExternal() {
			external = append(external, l.Target)
		} else {
			local = append(local, l.Target)
		}
	}
	return local, external
}
