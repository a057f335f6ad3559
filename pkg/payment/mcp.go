package payment

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// AttachMCP returns a copy of tool call arguments carrying the
// authorization and payment block.
func AttachMCP(args map[string]interface{}, auth string, p *RequestPayload) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(args)+2)
	for k, v := range args {
		out[k] = v
	}

	block, err := toObject(p)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payment block")
	}

	out[MCPAuthArg] = auth
	out[MCPPaymentArg] = block

	return out, nil
}

// ExtractMCP splits the reserved arguments from the tool's own arguments.
func ExtractMCP(args map[string]interface{}) (string, *RequestPayload, map[string]interface{}, error) {
	rest := make(map[string]interface{}, len(args))
	for k, v := range args {
		if k != MCPAuthArg && k != MCPPaymentArg {
			rest[k] = v
		}
	}

	auth, _ := args[MCPAuthArg].(string)

	block, ok := args[MCPPaymentArg]
	if !ok {
		return auth, nil, rest, nil
	}

	p := &RequestPayload{}
	if err := fromObject(block, p); err != nil {
		return "", nil, nil, errors.Wrap(err, "decoding payment block")
	}
	if err := p.Validate(); err != nil {
		return "", nil, nil, err
	}

	return auth, p, rest, nil
}

// AttachMCPResult adds the payment response to a tool result's metadata.
func AttachMCPResult(result map[string]interface{}, p *ResponsePayload) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(result)+1)
	for k, v := range result {
		out[k] = v
	}

	block, err := toObject(p)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payment response")
	}
	out[MCPPaymentArg] = block

	return out, nil
}

func ExtractMCPResult(result map[string]interface{}) (*ResponsePayload, error) {
	block, ok := result[MCPPaymentArg]
	if !ok {
		return nil, nil
	}

	p := &ResponsePayload{}
	if err := fromObject(block, p); err != nil {
		return nil, errors.Wrap(err, "decoding payment response")
	}

	return p, nil
}

func toObject(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	m := map[string]interface{}{}
	return m, json.Unmarshal(b, &m)
}

func fromObject(o interface{}, v interface{}) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

// MCPErrorResult renders a rejection as a tool result.
func MCPErrorResult(eb *ErrorBody) (map[string]interface{}, error) {
	obj, err := toObject(eb)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"isError": true, "error": obj}, nil
}

// MCPErrorFromResult returns the rejection carried by a tool result, if any.
func MCPErrorFromResult(res map[string]interface{}) *ErrorBody {
	raw, ok := res["error"]
	if !ok {
		return nil
	}

	eb := &ErrorBody{}
	if err := fromObject(raw, eb); err != nil || eb.Code == "" {
		return nil
	}

	return eb
}
