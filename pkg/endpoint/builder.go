package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Operation is an API call: an HTTP method and a path template relative to
// the base URL. Placeholders are written as {name}.
type Operation struct {
	Name   string
	Method string
	Path   string
}

var (
	CreateCheckoutSession   = Operation{Name: "create_checkout_session", Method: http.MethodPost, Path: "checkouts"}
	RetrieveCheckoutSession = Operation{Name: "retrieve_checkout_session", Method: http.MethodGet, Path: "checkouts/{id}"}
	RetrievePayment         = Operation{Name: "retrieve_payment", Method: http.MethodGet, Path: "payments/{payment_id}"}
	ListPayments            = Operation{Name: "list_payments", Method: http.MethodGet, Path: "payments"}
)

var operations = map[string]Operation{
	CreateCheckoutSession.Name:   CreateCheckoutSession,
	RetrieveCheckoutSession.Name: RetrieveCheckoutSession,
	RetrievePayment.Name:         RetrievePayment,
	ListPayments.Name:            ListPayments,
}

// Lookup finds an operation by name.
func Lookup(name string) (Operation, error) {
	op, ok := operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Operations returns every known operation sorted by name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for _, op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Placeholders returns the path parameter names of op in path order.
func (op Operation) Placeholders() []string {
	var names []string
	for _, segment := range strings.Split(op.Path, "/") {
		if name, ok := placeholder(segment); ok {
			names = append(names, name)
		}
	}
	return names
}

// MissingParamError names the path parameter that was empty.
type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required %s parameter", e.Name)
}

func (e *MissingParamError) Unwrap() error {
	return ErrMissingParam
}

// Builder turns operations into absolute URLs against one base URL.
type Builder struct {
	base *url.URL
}

// NewBuilder validates cfg and resolves its base URL.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	return &Builder{base: base}, nil
}

// BaseURL returns a copy of the resolved base URL.
func (b *Builder) BaseURL() *url.URL {
	u := *b.base
	return &u
}

// URL fills op's path template from params and appends the remaining
// non-empty parameters as the query string.
func (b *Builder) URL(op Operation, params Params) (*url.URL, error) {
	if params == nil {
		params = NoParams{}
	}
	values := make(map[string]string)
	var order []string
	for _, p := range params.Parameters() {
		if _, seen := values[p.Name]; !seen {
			order = append(order, p.Name)
		}
		values[p.Name] = p.Value
	}

	segments := strings.Split(strings.Trim(op.Path, "/"), "/")
	rawSegments := make([]string, len(segments))
	escapedSegments := make([]string, len(segments))
	used := make(map[string]bool)
	for i, segment := range segments {
		name, ok := placeholder(segment)
		if !ok {
			rawSegments[i] = segment
			escapedSegments[i] = url.PathEscape(segment)
			continue
		}
		value := values[name]
		if value == "" {
			return nil, &MissingParamError{Name: name}
		}
		used[name] = true
		rawSegments[i] = value
		escapedSegments[i] = url.PathEscape(value)
	}

	u := *b.base
	basePath := strings.TrimSuffix(u.EscapedPath(), "/")
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(rawSegments, "/")
	u.RawPath = basePath + "/" + strings.Join(escapedSegments, "/")

	query := u.Query()
	for _, name := range order {
		if used[name] || values[name] == "" {
			continue
		}
		query.Set(name, values[name])
	}
	u.RawQuery = query.Encode()
	return &u, nil
}

// Build validates cfg and returns the URL for op.
func Build(cfg Config, op Operation, params Params) (*url.URL, error) {
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	return b.URL(op, params)
}

func placeholder(segment string) (string, bool) {
	if len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}
