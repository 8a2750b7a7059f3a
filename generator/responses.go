package generator

import (
	"fmt"

	"github.com/upachler/cogenitor/generrors"
	"github.com/upachler/cogenitor/internal/httputil"
	"github.com/upachler/cogenitor/parser"
)

// Fixed variant names appended to every error sum type. UnknownResponse
// carries any observed status the document did not declare, 2xx included;
// OtherError carries transport and decoding failures.
const (
	variantUnknownResponse = "UnknownResponse"
	variantOtherError      = "OtherError"
)

// buildResponses partitions an operation's declared responses into the
// success result shape and the error sum type, returning the declared cases
// for the rendering backend.
//
// Success: no 2xx responses -> Unit; exactly one -> its content type,
// unwrapped; several -> a sum type "{prefix}Success" with one
// status-fragment variant per response in declaration order.
//
// Error: always a sum type "{prefix}Error" holding the declared non-2xx
// variants in declaration order followed by UnknownResponse and OtherError.
func (g *generation) buildResponses(op *parser.Operation, prefix, path string) (TypeDescriptor, TypeDescriptor, []ResponseCase, error) {
	if op.DefaultResponse != nil {
		return TypeDescriptor{}, TypeDescriptor{}, nil, &generrors.UnsupportedConstructError{
			Path:      path + ".responses.default",
			Construct: "default",
			Message:   "the default response is not supported",
		}
	}

	cases := make([]ResponseCase, 0, len(op.Responses))
	var successes, failures []ResponseCase
	for _, entry := range op.Responses {
		code, ok := httputil.ParseStatusCode(entry.Code)
		if !ok {
			return TypeDescriptor{}, TypeDescriptor{}, nil, &generrors.UnsupportedConstructError{
				Path:      fmt.Sprintf("%s.responses.%s", path, entry.Code),
				Construct: entry.Code,
				Message:   "response status codes must be three-digit numerics",
			}
		}
		casePath := fmt.Sprintf("%s.responses.%d", path, code)
		contentName := prefix + statusFragment(code) + "Content"
		content, err := g.mapContent(entry.Response.Content, contentName, casePath)
		if err != nil {
			return TypeDescriptor{}, TypeDescriptor{}, nil, err
		}
		c := ResponseCase{Code: code, Content: content, Success: httputil.IsSuccessCode(code)}
		if len(entry.Response.Content) == 1 {
			c.MediaType = entry.Response.Content[0].MediaType
		}
		cases = append(cases, c)
		if c.Success {
			successes = append(successes, c)
		} else {
			failures = append(failures, c)
		}
	}

	success, err := g.buildSuccess(successes, prefix, path)
	if err != nil {
		return TypeDescriptor{}, TypeDescriptor{}, nil, err
	}
	errType, err := g.buildError(failures, prefix, path)
	if err != nil {
		return TypeDescriptor{}, TypeDescriptor{}, nil, err
	}
	return success, errType, cases, nil
}

func (g *generation) buildSuccess(successes []ResponseCase, prefix, path string) (TypeDescriptor, error) {
	switch len(successes) {
	case 0:
		return Unit(), nil
	case 1:
		return successes[0].Content, nil
	}

	variants := make([]Variant, 0, len(successes))
	for _, c := range successes {
		variants = append(variants, Variant{
			Name:    statusFragment(c.Code),
			Payload: c.Content,
		})
	}
	identifier := prefix + "Success"
	err := g.module.Register(&NamedTypeDefinition{
		Identifier: identifier,
		Kind:       DefinitionSum,
		Variants:   variants,
		SourcePath: path + ".responses",
	})
	if err != nil {
		return TypeDescriptor{}, err
	}
	return Named(identifier), nil
}

func (g *generation) buildError(failures []ResponseCase, prefix, path string) (TypeDescriptor, error) {
	variants := make([]Variant, 0, len(failures)+2)
	for _, c := range failures {
		variants = append(variants, Variant{
			Name:    statusFragment(c.Code),
			Payload: c.Content,
		})
	}
	variants = append(variants,
		Variant{Name: variantUnknownResponse, Payload: Primitive(KindRawResponse)},
		Variant{Name: variantOtherError, Payload: Primitive(KindErrorCapture)},
	)

	identifier := prefix + "Error"
	err := g.module.Register(&NamedTypeDefinition{
		Identifier: identifier,
		Kind:       DefinitionSum,
		Variants:   variants,
		SourcePath: path + ".responses",
	})
	if err != nil {
		return TypeDescriptor{}, err
	}
	return Named(identifier), nil
}
