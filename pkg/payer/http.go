package payer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payment"
)

const maxResponseSize = 10 << 20

var _ Service = (*HTTPService)(nil)

// HTTPService reaches the payee's payment endpoints over HTTP.
type HTTPService struct {
	baseURL string
	client  *http.Client

	mu       sync.Mutex
	basePath string
}

func NewHTTPService(baseURL string, client *http.Client) *HTTPService {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (h *HTTPService) Endpoint() string {
	return h.baseURL
}

func (h *HTTPService) Discover(ctx context.Context) (*payment.ServiceInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+payment.WellKnownPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building discovery request")
	}

	info := &payment.ServiceInfo{}
	if err := h.roundTrip(req, "discover", info); err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.basePath = info.PaymentBasePath()
	h.mu.Unlock()

	return info, nil
}

func (h *HTTPService) paymentPath(ctx context.Context, p string) (string, error) {
	h.mu.Lock()
	base := h.basePath
	h.mu.Unlock()

	if base == "" {
		info, err := h.Discover(ctx)
		if err != nil {
			return "", err
		}
		base = info.PaymentBasePath()
	}

	return base + p, nil
}

func (h *HTTPService) Recover(ctx context.Context, auth Authorize, rr *payment.RecoveryRequest) (*payment.RecoveryResponse, error) {
	p, err := h.paymentPath(ctx, payment.RecoveryPath)
	if err != nil {
		return nil, err
	}

	authz, err := auth(ctx, payment.Operation(http.MethodGet, p))
	if err != nil {
		return nil, err
	}

	target := h.baseURL + p
	if rr != nil && rr.ChannelID != "" {
		target += "?" + url.Values{payment.QueryChannelID: {rr.ChannelID}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building recovery request")
	}
	req.Header.Set(payment.HeaderAuthorization, authz)

	res := &payment.RecoveryResponse{}
	if err := h.roundTrip(req, "recover", res); err != nil {
		return nil, err
	}

	return res, nil
}

func (h *HTTPService) Commit(ctx context.Context, auth Authorize, body *payment.CommitRequest) (*payment.CommitResponse, error) {
	p, err := h.paymentPath(ctx, payment.CommitPath)
	if err != nil {
		return nil, err
	}

	authz, err := auth(ctx, payment.Operation(http.MethodPost, p))
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "encoding commit request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+p, bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "building commit request")
	}
	req.Header.Set(payment.HeaderAuthorization, authz)
	req.Header.Set("Content-Type", "application/json")

	res := &payment.CommitResponse{}
	if err := h.roundTrip(req, "commit", res); err != nil {
		return nil, err
	}

	return res, nil
}

func (h *HTTPService) roundTrip(req *http.Request, op string, out interface{}) error {
	resp, err := h.client.Do(req)
	if err != nil {
		if cerr := req.Context().Err(); cerr != nil {
			return cerr
		}
		return &payment.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &payment.TransportError{Op: op, Err: errors.Wrap(err, "reading response")}
	}

	if err := errorFromResponse(resp.StatusCode, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &payment.TransportError{Op: op, Err: errors.Wrap(err, "decoding response")}
	}

	return nil
}

// errorFromResponse maps non 2xx responses to the error taxonomy.
func errorFromResponse(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	eb := &payment.ErrorBody{}
	if err := json.Unmarshal(body, eb); err == nil && eb.Code != "" {
		return payment.ErrorFromBody(eb, status)
	}

	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &payment.TransportError{Op: "call", Err: errors.Errorf("status %d", status)}
	default:
		return payment.NewServiceError(status, payment.CodeInternal, http.StatusText(status))
	}
}

// HTTP makes paid HTTP calls through a Client.
type HTTP struct {
	client  *Client
	http    *http.Client
	baseURL string
}

// Response is a successful paid HTTP response with its body read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Payment    *payment.ResponsePayload
}

func NewHTTP(c *Client, httpClient *http.Client, baseURL string) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTP{client: c, http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Do sends a paid request for path. The DIDAuth operation is METHOD:path and
// the signature also covers the body digest.
func (h *HTTP) Do(ctx context.Context, method, path string, body []byte, header http.Header) (*Response, error) {
	urlPath := path
	if i := strings.IndexByte(urlPath, '?'); i >= 0 {
		urlPath = urlPath[:i]
	}

	op := didauth.Operation{Operation: payment.Operation(method, urlPath)}
	if len(body) > 0 {
		op.Params = map[string]interface{}{payment.ParamBodyHash: payment.BodyHash(body)}
	}

	var out *Response

	_, err := h.client.Do(ctx, op, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		resp, err := h.send(ctx, method, path, body, header, r)
		if err != nil {
			return nil, err
		}

		out = resp
		return resp.Payment, nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (h *HTTP) send(ctx context.Context, method, path string, body []byte, header http.Header, r *Request) (*Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rd)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	ph, err := payment.EncodeHeader(r.Payment)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payment header")
	}

	req.Header.Set(payment.HeaderAuthorization, r.Authorization)
	req.Header.Set(payment.HeaderPaymentData, ph)

	resp, err := h.http.Do(req)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		return nil, &payment.TransportError{Op: "call", Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &payment.TransportError{Op: "call", Err: errors.Wrap(err, "reading response")}
	}

	if err := errorFromResponse(resp.StatusCode, b); err != nil {
		return nil, err
	}

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}

	if v := resp.Header.Get(payment.HeaderPaymentData); v != "" {
		out.Payment, err = payment.DecodeResponseHeader(v)
		if err != nil {
			return nil, &payment.TransportError{Op: "call", Err: err}
		}
	}

	return out, nil
}
