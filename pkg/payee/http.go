package payee

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

const maxBodySize = 10 << 20

type costKey struct{}

type payerKey struct{}

type costHolder struct {
	mu   sync.Mutex
	cost *subrav.BigInt
}

// SetCost overrides the route price for the call running under ctx.
func SetCost(ctx context.Context, amount subrav.BigInt) bool {
	h, ok := ctx.Value(costKey{}).(*costHolder)
	if !ok {
		return false
	}

	h.mu.Lock()
	h.cost = &amount
	h.mu.Unlock()

	return true
}

// PayerDID returns the authenticated payer of a paid call.
func PayerDID(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(payerKey{}).(string)
	return d, ok
}

// Context derives the context a paid handler runs under, carrying the payer
// and accepting SetCost.
func (s *Session) Context(parent context.Context) context.Context {
	ctx := context.WithValue(parent, costKey{}, s.cost)
	return context.WithValue(ctx, payerKey{}, s.payerDID)
}

// Cost returns the amount set through SetCost, or price.
func (s *Session) Cost(price subrav.BigInt) subrav.BigInt {
	s.cost.mu.Lock()
	defer s.cost.mu.Unlock()

	if s.cost.cost != nil {
		return *s.cost.cost
	}

	return price
}

// Handler serves the payment endpoints and paid routes of a service.
type Handler struct {
	p      *Processor
	router *mux.Router
}

func NewHandler(p *Processor) *Handler {
	h := &Handler{p: p, router: mux.NewRouter()}

	base := p.cfg.Info().BasePath

	h.router.HandleFunc(payment.WellKnownPath, h.info).Methods(http.MethodGet)
	h.router.HandleFunc(base+payment.RecoveryPath, h.recovery).Methods(http.MethodGet)
	h.router.HandleFunc(base+payment.CommitPath, h.commit).Methods(http.MethodPost)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Route registers a paid route. Each successful call costs price unless the
// handler calls SetCost. Responses with an error status are not charged.
func (h *Handler) Route(method, path string, price subrav.BigInt, fn http.HandlerFunc) {
	h.router.Handle(path, h.paid(price, fn)).Methods(method)
}

type bufferedResponse struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) flush(w http.ResponseWriter, paymentHeader string) {
	for k, vs := range b.header {
		w.Header()[k] = vs
	}
	if paymentHeader != "" {
		w.Header().Set(payment.HeaderPaymentData, paymentHeader)
	}

	status := b.status
	if status == 0 {
		status = http.StatusOK
	}

	w.WriteHeader(status)
	w.Write(b.body.Bytes())
}

func (h *Handler) paid(price subrav.BigInt, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			h.writeError(w, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, "reading body"))
			return
		}

		in := &Incoming{
			Operation:     payment.Operation(r.Method, r.URL.Path),
			Authorization: r.Header.Get(payment.HeaderAuthorization),
		}
		if len(body) > 0 {
			in.BodyHash = payment.BodyHash(body)
		}

		if v := r.Header.Get(payment.HeaderPaymentData); v != "" {
			in.Payment, err = payment.DecodeRequestHeader(v)
			if err != nil {
				h.writeError(w, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error()))
				return
			}
		}

		s, err := h.p.Begin(r.Context(), in)
		if err != nil {
			h.writeError(w, err)
			return
		}

		if pr, res, ok := s.Replayed(); ok {
			s.Abort()
			h.writeReplay(w, pr, res)
			return
		}

		r = r.WithContext(s.Context(r.Context()))
		r.Body = io.NopCloser(bytes.NewReader(body))

		buf := newBufferedResponse()
		fn(buf, r)

		if buf.status >= http.StatusBadRequest {
			s.Abort()
			buf.flush(w, "")
			return
		}

		resp, err := s.Complete(r.Context(), s.Cost(price), buf)
		if err != nil {
			h.writeError(w, err)
			return
		}

		ph, err := payment.EncodeHeader(resp)
		if err != nil {
			h.writeError(w, errors.Wrap(err, "encoding payment header"))
			return
		}

		buf.flush(w, ph)
	}
}

func (h *Handler) writeReplay(w http.ResponseWriter, pr *payment.ResponsePayload, res interface{}) {
	ph, err := payment.EncodeHeader(pr)
	if err != nil {
		h.writeError(w, errors.Wrap(err, "encoding payment header"))
		return
	}

	if buf, ok := res.(*bufferedResponse); ok {
		buf.flush(w, ph)
		return
	}

	w.Header().Set(payment.HeaderPaymentData, ph)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.p.cfg.Info())
}

func (h *Handler) recovery(w http.ResponseWriter, r *http.Request) {
	req := &payment.RecoveryRequest{ChannelID: r.URL.Query().Get(payment.QueryChannelID)}

	res, err := h.p.Recovery(r.Context(), r.Header.Get(payment.HeaderAuthorization), payment.Operation(r.Method, r.URL.Path), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	req := &payment.CommitRequest{}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(req); err != nil {
		h.writeError(w, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error()))
		return
	}

	res, err := h.p.Commit(r.Context(), r.Header.Get(payment.HeaderAuthorization), payment.Operation(r.Method, r.URL.Path), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	body, status := payment.BodyFromError(err)
	if status >= http.StatusInternalServerError {
		h.p.logger.WithError(err).Error("request failed")
	} else {
		h.p.logger.WithError(err).WithField("code", body.Code).Debug("request rejected")
	}

	h.writeJSON(w, status, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.p.logger.WithError(err).Error("writing response")
	}
}
