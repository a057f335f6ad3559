package payer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payment"
)

// ToolCaller invokes an MCP tool and returns its result object.
type ToolCaller func(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error)

// MCPOperation names a tool call for DIDAuth.
func MCPOperation(tool string) string {
	return "tools/call:" + tool
}

// MCP makes paid MCP tool calls through a Client. The tool arguments are
// covered by the DIDAuth signature.
type MCP struct {
	client *Client
	call   ToolCaller
}

func NewMCP(c *Client, call ToolCaller) *MCP {
	return &MCP{client: c, call: call}
}

func (m *MCP) CallTool(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error) {
	var out map[string]interface{}

	op := didauth.Operation{Operation: MCPOperation(name), Params: args}

	_, err := m.client.Do(ctx, op, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		withPayment, err := payment.AttachMCP(args, r.Authorization, r.Payment)
		if err != nil {
			return nil, err
		}

		res, err := m.call(ctx, name, withPayment)
		if err != nil {
			return nil, err
		}

		if eb := payment.MCPErrorFromResult(res); eb != nil {
			return nil, payment.ErrorFromBody(eb, 0)
		}

		p, err := payment.ExtractMCPResult(res)
		if err != nil {
			return nil, &payment.TransportError{Op: "tools/call", Err: err}
		}

		out = make(map[string]interface{}, len(res))
		for k, v := range res {
			if k != payment.MCPPaymentArg {
				out[k] = v
			}
		}

		return p, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "calling tool %s", name)
	}

	return out, nil
}
