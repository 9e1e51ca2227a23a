package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type orderParams struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

type orderTerm struct {
	key  string
	desc bool
}

func parseOrderBy(raw string, schema OrderSchema) (orderParams, error) {
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return orderParams{}, fmt.Errorf("default order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return orderParams{}, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	var terms []orderTerm
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return orderParams{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		key := parts[0]
		if _, ok := schema.Fields[key]; !ok {
			return orderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}
		desc := false
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return orderParams{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
			}
		}
		for _, t := range terms {
			if t.key == key {
				return orderParams{}, fmt.Errorf("duplicate order key %q", key)
			}
		}
		terms = append(terms, orderTerm{key: key, desc: desc})
	}
	if len(terms) > 2 {
		return orderParams{}, errors.New("order_by supports at most two keys")
	}

	ord := orderParams{PrimaryKey: schema.DefaultPrimary, PrimaryDesc: schema.DefaultPrimaryDesc}
	if len(terms) > 0 {
		ord.PrimaryKey, ord.PrimaryDesc = terms[0].key, terms[0].desc
	}
	ord.SecondaryKey, ord.SecondaryDesc = schema.FallbackKey, schema.FallbackDesc
	if len(terms) > 1 {
		ord.SecondaryKey, ord.SecondaryDesc = terms[1].key, terms[1].desc
	}
	if ord.SecondaryKey == ord.PrimaryKey {
		// the fallback key is the tie breaker; drop it when it is already primary.
		ord.SecondaryKey, ord.SecondaryDesc = "", false
	}
	return ord, nil
}

func setOrderParams(target reflect.Value, ord orderParams) error {
	values := map[string]any{
		"PrimaryKey":    ord.PrimaryKey,
		"PrimaryDesc":   ord.PrimaryDesc,
		"SecondaryKey":  ord.SecondaryKey,
		"SecondaryDesc": ord.SecondaryDesc,
	}
	for name, v := range values {
		field := target.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", target.Type(), name)
		}
		val := reflect.ValueOf(v)
		if !val.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("field %q must be %s-compatible, got %s", name, val.Type(), field.Type())
		}
		field.Set(val.Convert(field.Type()))
	}
	return nil
}
