package utils

import "net/url"

const redacted = "REDACTED"

// RedactQuery скрывает значения перечисленных query-параметров, чтобы URL можно было писать в лог.
// Если URL не разбирается, возвращается заглушка без исходной строки.
func RedactQuery(rawURL string, params ...string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	for _, p := range params {
		if q.Has(p) {
			q.Set(p, redacted)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
