package resolver

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

const (
	dnsRecordPrefix = "_did."
	dnsTimeout      = 5 * time.Second
	resolvConf      = "/etc/resolv.conf"
)

// dnsServer returns the configured name server or the first one in
// resolv.conf.
func (r *Resolver) dnsServer() (string, error) {
	if r.nameServer != "" {
		return r.nameServer, nil
	}

	cfg, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		return "", errors.Wrap(err, "reading resolv.conf")
	}
	if len(cfg.Servers) == 0 {
		return "", errors.New("no name servers configured")
	}

	return net.JoinHostPort(cfg.Servers[0], cfg.Port), nil
}

// resolveDNS builds the document of did:dns:<domain> from the TXT records at
// _did.<domain>. Each record is "id=<fragment> k=<multicodec key>".
func (r *Resolver) resolveDNS(ctx context.Context, u w3cdid.URL) (*w3cdid.Document, error) {
	domain := u.Id()
	if domain == "" {
		return nil, errors.Wrap(did.ErrDIDNotFound, "empty did:dns domain")
	}

	server, err := r.dnsServer()
	if err != nil {
		return nil, err
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(dnsRecordPrefix+domain), dns.TypeTXT)
	m.RecursionDesired = true

	c := &dns.Client{Timeout: dnsTimeout}

	resp, _, err := c.ExchangeContext(ctx, m, server)
	if err == nil && resp.Truncated {
		c.Net = "tcp"
		resp, _, err = c.ExchangeContext(ctx, m, server)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying did:dns records")
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, errors.Wrapf(did.ErrDIDNotFound, "%s", u)
	default:
		return nil, errors.Errorf("did:dns query returned %s", dns.RcodeToString[resp.Rcode])
	}

	id := string(u)
	doc := &w3cdid.Document{
		Context: []string{w3cdid.ContextV1},
		ID:      id,
	}

	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}

		frag, key, ok := parseKeyRecord(strings.Join(txt.Txt, ""))
		if !ok {
			continue
		}

		pk, err := cryptography.DecodeMulticodec(key)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding did:dns key %s", frag)
		}

		vm, err := cryptography.NewVerificationMethod(id+"#"+frag, id, pk)
		if err != nil {
			return nil, err
		}

		doc.VerificationMethod = append(doc.VerificationMethod, vm)
		doc.Authentication = append(doc.Authentication, w3cdid.RefTo(vm.ID))
		doc.CapabilityInvocation = append(doc.CapabilityInvocation, w3cdid.RefTo(vm.ID))
	}

	if len(doc.VerificationMethod) == 0 {
		return nil, errors.Wrapf(did.ErrDIDNotFound, "%s has no key records", u)
	}

	return doc, nil
}

func parseKeyRecord(s string) (frag string, key string, ok bool) {
	for _, f := range strings.Fields(s) {
		k, v, found := strings.Cut(f, "=")
		if !found {
			continue
		}

		switch k {
		case "id":
			frag = v
		case "k":
			key = v
		}
	}

	return frag, key, frag != "" && key != ""
}
