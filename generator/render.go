package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/upachler/cogenitor/internal/httputil"
	"github.com/upachler/cogenitor/internal/naming"
	"github.com/upachler/cogenitor/parser"
)

// renderModule turns the assembled module into formatted Go source files:
// types.go with the named type definitions in insertion order, and client.go
// with the Client struct and one method per operation in document order.
func renderModule(module *Module, packageName string) ([]GeneratedFile, error) {
	r := &renderer{module: module}

	typesSrc, err := executeTemplate("types.go.tmpl", r.typesData(packageName))
	if err != nil {
		return nil, fmt.Errorf("generator: rendering types.go: %w", err)
	}
	clientSrc, err := executeTemplate("client.go.tmpl", r.clientData(packageName))
	if err != nil {
		return nil, fmt.Errorf("generator: rendering client.go: %w", err)
	}

	return []GeneratedFile{
		{Name: "types.go", Content: typesSrc},
		{Name: "client.go", Content: clientSrc},
	}, nil
}

type renderer struct {
	module *Module
}

// goTypeOf renders a type descriptor as Go source text
func goTypeOf(d TypeDescriptor) string {
	switch d.Kind {
	case DescriptorUnit:
		return "struct{}"
	case DescriptorPrimitive:
		switch d.Primitive {
		case KindBool:
			return "bool"
		case KindString:
			return "string"
		case KindInt32:
			return "int32"
		case KindInt64:
			return "int64"
		case KindFloat32:
			return "float32"
		case KindFloat64:
			return "float64"
		case KindRawResponse:
			return "*http.Response"
		case KindErrorCapture:
			return "error"
		}
	case DescriptorNamed:
		return d.Name
	case DescriptorSequence:
		return "[]" + goTypeOf(*d.Elem)
	}
	return "any"
}

// zeroValueOf renders the zero value literal for a descriptor
func zeroValueOf(d TypeDescriptor) string {
	switch d.Kind {
	case DescriptorPrimitive:
		switch d.Primitive {
		case KindBool:
			return "false"
		case KindString:
			return `""`
		case KindRawResponse, KindErrorCapture:
			return "nil"
		default:
			return "0"
		}
	case DescriptorNamed:
		return d.Name + "{}"
	case DescriptorSequence:
		return "nil"
	}
	return "struct{}{}"
}

// exportedName derives a Go-exported identifier from a document name
func exportedName(s string) string {
	if strings.ContainsAny(s, "_-./ ") {
		return naming.ToPascalCase(s)
	}
	return naming.Capitalize(s)
}

// --- types.go view model ---

type typesFileData struct {
	Package string
	Types   []typeView
}

type typeView struct {
	Name     string
	IsRecord bool
	Fields   []fieldView
	Variants []variantView
	// IsError marks error sum types, which implement the error interface
	IsError bool
	// OtherConst is the kind constant of the OtherError variant on error sums
	OtherConst string
}

type fieldView struct {
	GoName string
	GoType string
	Tag    string
}

type variantView struct {
	Name     string
	Const    string
	Ctor     string
	HasField bool
	// FieldType is the struct field type; empty when the payload is Unit
	FieldType string
	// Param is the constructor parameter list, e.g. "v Pet"
	Param string
	// Assign is the struct literal assignment, e.g. "Ok200: &v"
	Assign string
}

func (r *renderer) typesData(packageName string) typesFileData {
	data := typesFileData{Package: packageName}
	for _, def := range r.module.Definitions() {
		data.Types = append(data.Types, r.typeView(def))
	}
	return data
}

func (r *renderer) typeView(def *NamedTypeDefinition) typeView {
	view := typeView{Name: def.Identifier, IsRecord: def.Kind == DefinitionRecord}
	if view.IsRecord {
		for _, f := range def.Fields {
			goType := goTypeOf(f.Type)
			tag := f.Name
			if !f.Required {
				if f.Type.Kind != DescriptorSequence {
					goType = "*" + goType
				}
				tag += ",omitempty"
			}
			view.Fields = append(view.Fields, fieldView{
				GoName: exportedName(f.Name),
				GoType: goType,
				Tag:    tag,
			})
		}
		return view
	}

	for _, v := range def.Variants {
		vv := variantView{
			Name:  v.Name,
			Const: def.Identifier + "Kind" + v.Name,
			Ctor:  "New" + def.Identifier + v.Name,
		}
		switch {
		case v.Payload.IsUnit():
			// no payload field
		case v.Payload.Kind == DescriptorPrimitive && v.Payload.Primitive == KindErrorCapture:
			vv.HasField = true
			vv.FieldType = "error"
			vv.Param = "err error"
			vv.Assign = v.Name + ": err"
		case v.Payload.Kind == DescriptorPrimitive && v.Payload.Primitive == KindRawResponse:
			vv.HasField = true
			vv.FieldType = "*http.Response"
			vv.Param = "resp *http.Response"
			vv.Assign = v.Name + ": resp"
		case v.Payload.Kind == DescriptorSequence:
			vv.HasField = true
			vv.FieldType = goTypeOf(v.Payload)
			vv.Param = "v " + vv.FieldType
			vv.Assign = v.Name + ": v"
		default:
			vv.HasField = true
			vv.FieldType = "*" + goTypeOf(v.Payload)
			vv.Param = "v " + goTypeOf(v.Payload)
			vv.Assign = v.Name + ": &v"
		}
		view.Variants = append(view.Variants, vv)
	}

	if isErrorSum(def) {
		view.IsError = true
		view.OtherConst = def.Identifier + "Kind" + variantOtherError
	}
	return view
}

// isErrorSum reports whether def is an operation error sum type: its last
// two variants are the fixed UnknownResponse and OtherError captures.
func isErrorSum(def *NamedTypeDefinition) bool {
	n := len(def.Variants)
	if def.Kind != DefinitionSum || n < 2 {
		return false
	}
	return def.Variants[n-2].Name == variantUnknownResponse &&
		def.Variants[n-1].Name == variantOtherError
}

// --- client.go view model ---

type clientFileData struct {
	Package    string
	Operations []operationView
}

type operationView struct {
	MethodName string
	Comment    []string
	HTTPMethod string
	ParamsType string
	Params     []paramView
	// SuccessType is empty when the operation's success shape is Unit; the
	// method then returns only the error
	SuccessType string
	ZeroReturn  string
	ErrorCtor   string
	URLExpr     string
	Query       []paramUse
	Header      []paramUse
	Cookie      []paramUse
	Cases       []caseView
}

type paramView struct {
	GoName string
	GoType string
	Doc    string
}

type paramUse struct {
	Key       string
	GoName    string
	Optional  bool
	ValueExpr string
}

type caseView struct {
	Code int
	Body []string
}

func (r *renderer) clientData(packageName string) clientFileData {
	data := clientFileData{Package: packageName}
	for _, op := range r.module.Operations() {
		data.Operations = append(data.Operations, r.operationView(op))
	}
	return data
}

func (r *renderer) operationView(op *OperationDescriptor) operationView {
	prefix := operationTypePrefix(op.Path, op.Method)
	view := operationView{
		MethodName: naming.ToPascalCase(op.Identifier),
		HTTPMethod: httpMethodConst(op.Method),
		ErrorCtor:  "New" + op.Error.Name,
	}

	view.Comment = operationComment(op, view.MethodName)

	if len(op.Parameters) > 0 {
		view.ParamsType = prefix + "Params"
		for _, p := range op.Parameters {
			goType := goTypeOf(p.Type)
			if !p.Required && p.Type.Kind != DescriptorSequence {
				goType = "*" + goType
			}
			view.Params = append(view.Params, paramView{
				GoName: exportedName(p.Name),
				GoType: goType,
				Doc:    fmt.Sprintf("%s parameter %q", p.Location, p.Name),
			})
		}
	}

	if !op.Success.IsUnit() {
		view.SuccessType = goTypeOf(op.Success)
		view.ZeroReturn = zeroValueOf(op.Success)
	}

	view.URLExpr = urlExpr(op)
	for _, p := range op.Parameters {
		use := paramUse{
			Key:       p.Name,
			GoName:    exportedName(p.Name),
			Optional:  !p.Required,
			ValueExpr: paramValueExpr(p),
		}
		switch p.Location {
		case parser.LocationQuery:
			view.Query = append(view.Query, use)
		case parser.LocationHeader:
			view.Header = append(view.Header, use)
		case parser.LocationCookie:
			view.Cookie = append(view.Cookie, use)
		}
	}

	b := &caseBodyBuilder{
		renderer:    r,
		op:          op,
		zeroPrefix:  "",
		errCtor:     view.ErrorCtor,
		successUnit: op.Success.IsUnit(),
	}
	if view.SuccessType != "" {
		b.zeroPrefix = view.ZeroReturn + ", "
	}
	for _, c := range op.Responses {
		view.Cases = append(view.Cases, caseView{Code: c.Code, Body: b.build(c)})
	}
	return view
}

func operationComment(op *OperationDescriptor, methodName string) []string {
	head := fmt.Sprintf("%s calls %s %s.", methodName, strings.ToUpper(op.Method), op.Path)
	if op.Summary != "" {
		head = fmt.Sprintf("%s calls %s %s: %s", methodName, strings.ToUpper(op.Method), op.Path, op.Summary)
	}
	lines := []string{head}
	if op.OperationID != "" {
		lines = append(lines, "", "Operation: "+op.OperationID)
	}
	return lines
}

func httpMethodConst(method string) string {
	switch method {
	case "get":
		return "http.MethodGet"
	case "put":
		return "http.MethodPut"
	case "post":
		return "http.MethodPost"
	case "delete":
		return "http.MethodDelete"
	case "options":
		return "http.MethodOptions"
	case "head":
		return "http.MethodHead"
	case "patch":
		return "http.MethodPatch"
	case "trace":
		return "http.MethodTrace"
	}
	return strconv.Quote(strings.ToUpper(method))
}

// urlExpr builds the Go expression producing the request URL, substituting
// path parameters in place: c.baseURL + "/pet/" + url.PathEscape(...)
func urlExpr(op *OperationDescriptor) string {
	var b strings.Builder
	b.WriteString("c.baseURL")
	literal := ""
	flush := func() {
		if literal != "" {
			b.WriteString(" + " + strconv.Quote(literal))
			literal = ""
		}
	}
	for _, seg := range strings.Split(op.Path, "/") {
		if seg == "" {
			continue
		}
		name, isParam := strings.CutPrefix(seg, "{")
		if isParam {
			name, isParam = strings.CutSuffix(name, "}")
		}
		if !isParam {
			literal += "/" + seg
			continue
		}
		literal += "/"
		flush()
		b.WriteString(" + url.PathEscape(" + pathParamExpr(op, name) + ")")
	}
	flush()
	return b.String()
}

func pathParamExpr(op *OperationDescriptor, name string) string {
	for _, p := range op.Parameters {
		if p.Name == name && p.Location == parser.LocationPath {
			return paramValueExpr(p)
		}
	}
	// Undeclared path parameter; leave the template text in place.
	return strconv.Quote("{" + name + "}")
}

// paramValueExpr renders a parameter as a string-valued Go expression
func paramValueExpr(p Parameter) string {
	ref := "params." + exportedName(p.Name)
	if !p.Required && p.Type.Kind != DescriptorSequence {
		ref = "*" + ref
	}
	if p.Type.Kind == DescriptorPrimitive && p.Type.Primitive == KindString {
		return ref
	}
	if !p.Required && p.Type.Kind != DescriptorSequence {
		ref = "(" + ref + ")"
	}
	return "fmt.Sprint(" + ref + ")"
}

// caseBodyBuilder produces the statements handling one declared status code
// inside the generated response switch.
type caseBodyBuilder struct {
	renderer    *renderer
	op          *OperationDescriptor
	zeroPrefix  string
	errCtor     string
	successUnit bool
}

func (b *caseBodyBuilder) build(c ResponseCase) []string {
	successCount := 0
	for _, rc := range b.op.Responses {
		if rc.Success {
			successCount++
		}
	}

	var wrap func(expr string) string
	switch {
	case c.Success && successCount == 1:
		wrap = func(expr string) string {
			if expr == "" {
				if b.successUnit {
					return "return nil"
				}
				return "return " + zeroValueOf(b.op.Success) + ", nil"
			}
			return "return " + expr + ", nil"
		}
	case c.Success:
		sumName := b.op.Success.Name
		frag := statusFragment(c.Code)
		wrap = func(expr string) string {
			if expr == "" {
				return fmt.Sprintf("return New%s%s(), nil", sumName, frag)
			}
			return fmt.Sprintf("return New%s%s(%s), nil", sumName, frag, expr)
		}
	default:
		frag := statusFragment(c.Code)
		wrap = func(expr string) string {
			if expr == "" {
				return fmt.Sprintf("return %s%s%s()", b.zeroPrefix, b.errCtor, frag)
			}
			return fmt.Sprintf("return %s%s%s(%s)", b.zeroPrefix, b.errCtor, frag, expr)
		}
	}

	return b.decode(c.Content, c.MediaType, wrap)
}

// decode produces the statements decoding the response body as content and
// feeding the decoded value into wrap.
func (b *caseBodyBuilder) decode(content TypeDescriptor, mediaType string, wrap func(string) string) []string {
	if content.IsUnit() {
		return []string{wrap("")}
	}

	if def, ok := b.mediaSum(content); ok {
		return b.decodeMediaSum(def, wrap)
	}

	goType := goTypeOf(content)
	if !isJSONMedia(mediaType) {
		if content.Kind == DescriptorPrimitive && content.Primitive == KindString {
			return []string{wrap("string(data)")}
		}
		// Non-JSON media with a structured payload still decodes as JSON.
	}
	return []string{
		"var v " + goType,
		"if err := json.Unmarshal(data, &v); err != nil {",
		"\t" + b.retDecodeFail(),
		"}",
		wrap("v"),
	}
}

// decodeMediaSum produces a Content-Type switch with one branch per media
// variant; an unmatched Content-Type classifies as UnknownResponse.
func (b *caseBodyBuilder) decodeMediaSum(def *NamedTypeDefinition, wrap func(string) string) []string {
	lines := []string{
		`ct := resp.Header.Get("Content-Type")`,
		"if i := strings.IndexByte(ct, ';'); i >= 0 {",
		"\tct = ct[:i]",
		"}",
		"ct = strings.ToLower(strings.TrimSpace(ct))",
		"switch {",
	}
	for _, v := range def.Variants {
		lines = append(lines, "case "+mediaCondition(v.MediaType)+":")
		ctor := "New" + def.Identifier + v.Name
		variantWrap := func(expr string) string {
			if expr == "" {
				return wrap(ctor + "()")
			}
			return wrap(ctor + "(" + expr + ")")
		}
		for _, inner := range b.decode(v.Payload, v.MediaType, variantWrap) {
			lines = append(lines, "\t"+inner)
		}
	}
	lines = append(lines,
		"default:",
		"\tresp.Body = io.NopCloser(bytes.NewReader(data))",
		fmt.Sprintf("\treturn %s%sUnknownResponse(resp)", b.zeroPrefix, b.errCtor),
		"}",
	)
	return lines
}

func (b *caseBodyBuilder) retDecodeFail() string {
	return fmt.Sprintf(`return %s%sOtherError(fmt.Errorf("decoding response body: %%w", err))`,
		b.zeroPrefix, b.errCtor)
}

// mediaSum reports whether content names a media-type sum registered in the
// module.
func (b *caseBodyBuilder) mediaSum(content TypeDescriptor) (*NamedTypeDefinition, bool) {
	if content.Kind != DescriptorNamed {
		return nil, false
	}
	def, ok := b.renderer.module.Lookup(content.Name)
	if !ok || def.Kind != DefinitionSum || len(def.Variants) == 0 {
		return nil, false
	}
	if def.Variants[0].MediaType == "" {
		return nil, false
	}
	return def, true
}

func isJSONMedia(mediaType string) bool {
	if mediaType == "" {
		return true
	}
	_, subtype := httputil.SplitMediaType(mediaType)
	subtype = strings.ToLower(subtype)
	return subtype == "json" || strings.HasSuffix(subtype, "+json")
}

// mediaCondition renders the Content-Type match for one media variant;
// wildcard subtypes match by prefix, "*/*" matches anything.
func mediaCondition(mediaType string) string {
	mt := strings.ToLower(mediaType)
	if mt == "*/*" {
		return "true"
	}
	if typ, ok := strings.CutSuffix(mt, "/*"); ok {
		return fmt.Sprintf("strings.HasPrefix(ct, %s)", strconv.Quote(typ+"/"))
	}
	return fmt.Sprintf("ct == %s", strconv.Quote(mt))
}
