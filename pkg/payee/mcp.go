package payee

import (
	"context"
	"net/http"

	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

// ToolFunc is the implementation of a paid MCP tool. Arguments arrive
// without the reserved payment fields.
type ToolFunc func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error)

// MCPOperation names a tool call for DIDAuth.
func MCPOperation(tool string) string {
	return "tools/call:" + tool
}

// MCPTool wraps fn so every call is authenticated and paid. Rejections are
// returned as error results, not Go errors, so they reach the caller.
func (p *Processor) MCPTool(name string, price subrav.BigInt, fn ToolFunc) ToolFunc {
	return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		auth, pay, rest, err := payment.ExtractMCP(args)
		if err != nil {
			return errorResult(payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error()))
		}

		s, err := p.Begin(ctx, &Incoming{
			Operation:     MCPOperation(name),
			Authorization: auth,
			Payment:       pay,
			Params:        rest,
		})
		if err != nil {
			return errorResult(err)
		}

		if pr, res, ok := s.Replayed(); ok {
			s.Abort()
			out, _ := res.(map[string]interface{})
			return payment.AttachMCPResult(out, pr)
		}

		out, err := fn(s.Context(ctx), rest)
		if err != nil {
			s.Abort()
			return nil, err
		}

		resp, err := s.Complete(ctx, s.Cost(price), out)
		if err != nil {
			return errorResult(err)
		}

		return payment.AttachMCPResult(out, resp)
	}
}

func errorResult(err error) (map[string]interface{}, error) {
	body, _ := payment.BodyFromError(err)
	return payment.MCPErrorResult(body)
}
