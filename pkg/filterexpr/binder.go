// Package filterexpr binds AIP-style `filter` and `order_by` strings onto a
// query params struct. Filters are parsed as CEL and restricted to AND-ed
// comparisons against string fields.
package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ErrInvalidQuery wraps every filter or order_by rejection returned by Bind.
var ErrInvalidQuery = errors.New("invalid query")

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ Op = "=="
	OpSW Op = "startsWith"
	OpIN Op = "in"
)

// FilterField maps each allowed operator of a filter field to the name of the
// params struct field that receives the literal.
type FilterField struct {
	Ops map[Op]string
	// Normalize, when set, rewrites every literal before assignment.
	Normalize func(string) string
}

// OrderField maps an order key to a SQL expression.
type OrderField struct {
	Expr string
}

// OrderSchema describes ordering defaults and whitelisted keys.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// ResourceSchema aggregates filtering and ordering rules for a resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

// Bind parses the request filter & order_by and populates the params struct.
// The struct must expose PrimaryKey, PrimaryDesc, SecondaryKey and
// SecondaryDesc fields for ordering.
func Bind[M Msg, P any](msg M, binding *P, schema ResourceSchema) error {
	if binding == nil {
		return errors.New("binding must not be nil")
	}
	dest := reflect.ValueOf(binding).Elem()
	if dest.Kind() != reflect.Struct {
		return errors.New("binding must point to a struct")
	}

	if err := bindFilter(dest, msg.GetFilter(), schema.Filter); err != nil {
		return fmt.Errorf("%w: filter: %w", ErrInvalidQuery, err)
	}

	order, err := parseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("%w: order_by: %w", ErrInvalidQuery, err)
	}
	return setOrderParams(dest, order)
}

type predicate struct {
	Field string
	Op    Op
	Value any
}

func bindFilter(dest reflect.Value, filter string, fields map[string]FilterField) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return errors.New("filter schema has no fields defined")
	}

	opts := make([]cel.EnvOption, 0, len(fields))
	for name := range fields {
		opts = append(opts, cel.Variable(name, cel.StringType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return err
	}

	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return fmt.Errorf("failed to convert AST: %w", err)
	}
	conjuncts, err := extractConjuncts(parsed.GetExpr())
	if err != nil {
		return err
	}

	for _, expr := range conjuncts {
		pred, err := parsePredicate(expr)
		if err != nil {
			return err
		}
		rule, ok := fields[pred.Field]
		if !ok {
			return fmt.Errorf("field %q is not allowed", pred.Field)
		}
		target, ok := rule.Ops[pred.Op]
		if !ok {
			return fmt.Errorf("operator %q is not allowed for field %q", string(pred.Op), pred.Field)
		}
		field := dest.FieldByName(target)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", dest.Type(), target)
		}
		if err := assign(field, normalizeValue(pred.Value, rule.Normalize)); err != nil {
			return fmt.Errorf("field %q: %w", pred.Field, err)
		}
	}
	return nil
}

func extractConjuncts(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}
	switch call.Function {
	case "_&&_":
		var result []*exprpb.Expr
		for _, arg := range call.Args {
			conjuncts, err := extractConjuncts(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, conjuncts...)
		}
		return result, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("logical operator %q is not supported; only AND is allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

func parsePredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("unsupported expression; expected comparison or function call")
	}

	var (
		op             Op
		identExpr, lit *exprpb.Expr
	)
	switch call.Function {
	case "_==_":
		op = OpEQ
	case "@in":
		op = OpIN
	case "startsWith":
		op = OpSW
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}

	switch {
	case call.Target != nil && len(call.Args) == 1:
		identExpr, lit = call.Target, call.Args[0]
	case call.Target == nil && len(call.Args) == 2:
		identExpr, lit = call.Args[0], call.Args[1]
	default:
		return predicate{}, fmt.Errorf("operator %q expects two operands", string(op))
	}

	ident := identExpr.GetIdentExpr()
	if ident == nil {
		return predicate{}, errors.New("left-hand side must be an identifier")
	}
	value, err := parseLiteral(lit)
	if err != nil {
		return predicate{}, err
	}
	if _, isList := value.([]string); isList != (op == OpIN) {
		return predicate{}, fmt.Errorf("operator %q got the wrong literal kind", string(op))
	}
	return predicate{Field: ident.GetName(), Op: op, Value: value}, nil
}

func parseLiteral(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		if _, ok := constant.ConstantKind.(*exprpb.Constant_StringValue); !ok {
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
		return constant.GetStringValue(), nil
	}
	if list := expr.GetListExpr(); list != nil {
		elements := list.GetElements()
		if len(elements) == 0 {
			return nil, errors.New("list literal must not be empty")
		}
		values := make([]string, len(elements))
		for i, elem := range elements {
			val, err := parseLiteral(elem)
			if err != nil {
				return nil, fmt.Errorf("list literal element %d: %w", i, err)
			}
			str, ok := val.(string)
			if !ok || str == "" {
				return nil, errors.New("list literal elements must be non-empty strings")
			}
			values[i] = str
		}
		return values, nil
	}
	return nil, errors.New("right-hand side must be a string or list literal")
}

func normalizeValue(value any, fn func(string) string) any {
	if fn == nil {
		return value
	}
	switch v := value.(type) {
	case string:
		return fn(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = fn(s)
		}
		return out
	default:
		return value
	}
}

func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}
	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string destination, got %s", field.Kind())
		}
		field.SetString(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected []string destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(append([]string(nil), v...)))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}
