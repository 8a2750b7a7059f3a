package generator

import (
	"fmt"

	"github.com/upachler/cogenitor/internal/issues"
	"github.com/upachler/cogenitor/internal/severity"
	"github.com/upachler/cogenitor/parser"
)

// synthesizeOperation builds the client-facing descriptor for one path+verb
// pair: identifier and type prefix from the path template and verb,
// parameters in effective declaration order, and success/error shapes from
// the declared responses.
func (g *generation) synthesizeOperation(path, method string, item *parser.PathItem, op *parser.Operation) (*OperationDescriptor, error) {
	identifier := operationFragment(path, method)
	prefix := operationTypePrefix(path, method)
	docPath := fmt.Sprintf("paths.%s.%s", path, method)

	params, err := g.mapParameters(item.Parameters, op.Parameters, docPath)
	if err != nil {
		return nil, err
	}

	if op.RequestBody != nil {
		g.report(issues.Issue{
			Path:     docPath + ".requestBody",
			Message:  "request bodies are not supported; no body parameter was generated",
			Severity: severity.SeverityWarning,
		})
	}

	success, errType, cases, err := g.buildResponses(op, prefix, docPath)
	if err != nil {
		return nil, err
	}

	return &OperationDescriptor{
		Identifier:  identifier,
		Method:      method,
		Path:        path,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Parameters:  params,
		Responses:   cases,
		Success:     success,
		Error:       errType,
	}, nil
}

// mapParameters merges path-item and operation parameters into the effective
// list: path-item parameters not shadowed by an operation parameter of the
// same name and location come first, then every operation parameter in its
// own declaration order. A shadowing parameter therefore takes its operation
// position, not the path-item position it displaced.
func (g *generation) mapParameters(shared, own []*parser.Parameter, docPath string) ([]Parameter, error) {
	effective := make([]*parser.Parameter, 0, len(shared)+len(own))
	for _, p := range shared {
		shadowed := false
		for _, o := range own {
			if o.Name == p.Name && o.In == p.In {
				shadowed = true
				break
			}
		}
		if !shadowed {
			effective = append(effective, p)
		}
	}
	effective = append(effective, own...)

	params := make([]Parameter, 0, len(effective))
	for _, p := range effective {
		paramPath := fmt.Sprintf("%s.parameters.%s", docPath, p.Name)
		paramType, err := g.mapSchema(p.Schema, paramPath+".schema")
		if err != nil {
			return nil, err
		}
		params = append(params, Parameter{
			Name:     p.Name,
			Location: p.In,
			Type:     paramType,
			Required: p.Required,
		})
	}
	return params, nil
}
