package resolver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

const maxWebDocumentSize = 1 << 20

// webDocumentURL maps did:web:host[:path...] to the document location.
func webDocumentURL(u w3cdid.URL, insecure bool) (string, error) {
	parts := strings.Split(u.Id(), ":")
	if len(parts) == 0 || parts[0] == "" {
		return "", errors.Wrap(did.ErrDIDNotFound, "empty did:web host")
	}

	host, err := url.PathUnescape(parts[0])
	if err != nil {
		return "", errors.Wrap(err, "decoding did:web host")
	}

	path := "/.well-known"
	if len(parts) > 1 {
		segs := make([]string, 0, len(parts)-1)
		for _, p := range parts[1:] {
			seg, err := url.PathUnescape(p)
			if err != nil {
				return "", errors.Wrap(err, "decoding did:web path")
			}
			segs = append(segs, seg)
		}
		path = "/" + strings.Join(segs, "/")
	}

	scheme := "https"
	if insecure {
		scheme = "http"
	}

	return scheme + "://" + host + path + "/did.json", nil
}

func (r *Resolver) resolveWeb(ctx context.Context, u w3cdid.URL) (*w3cdid.Document, error) {
	loc, err := webDocumentURL(u, r.insecure)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building did:web request")
	}
	req.Header.Set("Accept", "application/did+json, application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching did:web document")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return nil, errors.Wrapf(did.ErrDIDNotFound, "%s", u)
	default:
		return nil, errors.Errorf("did:web document returned status %d", resp.StatusCode)
	}

	doc := &w3cdid.Document{}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxWebDocumentSize)).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decoding did:web document")
	}

	if doc.ID != string(u) {
		return nil, errors.Errorf("did:web document id %q does not match %q", doc.ID, u)
	}

	return doc, nil
}
