package instalens

import (
	"strings"

	"github.com/goware/urlx"
	log "github.com/sirupsen/logrus"
)

// NormalizeURL normalizes an account URL into the canonical form used
// as the comparison key. Trailing slashes never survive normalization,
// so `.../user` and `.../user/` always collapse to the same key.
// Values that do not look like URLs are trimmed as-is rather than
// dropped.
func NormalizeURL(url string) string {
	if url == "" {
		return ""
	}
	if !strings.Contains(url, "://") {
		return strings.TrimRight(url, "/")
	}
	u, err := urlx.Parse(url)
	if err != nil {
		log.WithError(err).Debugf("error parsing url %s", url)
		return strings.TrimRight(url, "/")
	}
	if u.Scheme == "http" && strings.HasSuffix(u.Host, ":80") {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	}
	if u.Scheme == "https" && strings.HasSuffix(u.Host, ":443") {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	u.User = nil
	u.Path = strings.TrimSuffix(u.Path, "/")
	norm, err := urlx.Normalize(u)
	if err != nil {
		log.WithError(err).Debugf("error normalizing url %s", url)
		return strings.TrimRight(url, "/")
	}
	return strings.TrimRight(norm, "/")
}
