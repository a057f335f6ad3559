package w3cdid

import (
	"net/url"
	"strings"
)

type URL string

func (u URL) parse() *url.URL {
	uri, err := url.Parse(string(u))
	if err != nil {
		return &url.URL{}
	}

	return uri
}

func (u URL) Scheme() string {
	return "did"
}

func (u URL) Method() string {
	uri := u.parse()
	p := strings.SplitN(uri.Opaque, ":", 2)
	return p[0]
}

func (u URL) Id() string {
	uri := u.parse()
	p := strings.SplitN(uri.Opaque, ":", 2)
	if len(p) < 2 {
		return ""
	}

	return p[1]
}

func (u URL) Query() string {
	uri := u.parse()
	return uri.RawQuery
}

func (u URL) Fragment() string {
	uri := u.parse()
	return uri.Fragment
}

// DID strips any path, query or fragment from the URL.
func (u URL) DID() string {
	s := string(u)
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		return s[:i]
	}

	return s
}
