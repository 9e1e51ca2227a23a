package filterexpr

import (
	"reflect"
	"strings"
	"testing"
)

type listVerbsParams struct {
	Language         *string
	Languages        []string
	InfinitivePrefix *string

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

type request struct {
	filter  string
	orderBy string
}

func (r request) GetFilter() string  { return r.filter }
func (r request) GetOrderBy() string { return r.orderBy }

var verbsSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"language": {
			Ops:       map[Op]string{OpEQ: "Language", OpIN: "Languages"},
			Normalize: strings.ToLower,
		},
		"infinitive": {
			Ops: map[Op]string{OpSW: "InfinitivePrefix"},
		},
	},
	Order: OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		Fields: map[string]OrderField{
			"created_at": {Expr: "created_at"},
			"infinitive": {Expr: "infinitive"},
			"id":         {Expr: "id"},
		},
	},
}

func TestBind_FilterAndOrder(t *testing.T) {
	var params listVerbsParams
	req := request{
		filter:  "language == 'FR' && infinitive.startsWith('par')",
		orderBy: "infinitive desc",
	}
	if err := Bind(req, &params, verbsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.Language == nil || *params.Language != "fr" {
		t.Fatalf("expected Language fr, got %v", params.Language)
	}
	if params.InfinitivePrefix == nil || *params.InfinitivePrefix != "par" {
		t.Fatalf("expected prefix par, got %v", params.InfinitivePrefix)
	}
	if params.PrimaryKey != "infinitive" || !params.PrimaryDesc {
		t.Fatalf("unexpected primary order %q desc=%v", params.PrimaryKey, params.PrimaryDesc)
	}
	if params.SecondaryKey != "id" || params.SecondaryDesc {
		t.Fatalf("unexpected secondary order %q desc=%v", params.SecondaryKey, params.SecondaryDesc)
	}
}

func TestBind_InList(t *testing.T) {
	var params listVerbsParams
	if err := Bind(request{filter: "language in ['es', 'DE']"}, &params, verbsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(params.Languages, []string{"es", "de"}) {
		t.Fatalf("unexpected languages %v", params.Languages)
	}
	if params.PrimaryKey != "created_at" || !params.PrimaryDesc {
		t.Fatalf("default order not applied: %+v", params)
	}
}

func TestBind_Rejects(t *testing.T) {
	cases := []request{
		{filter: "language == 'fr' || language == 'es'"},
		{filter: "translation == 'to speak'"},
		{filter: "infinitive == 'hablar'"},
		{filter: "language == 1"},
		{filter: "language in []"},
		{filter: "language =="},
		{orderBy: "translation"},
		{orderBy: "infinitive sideways"},
		{orderBy: "infinitive, infinitive"},
		{orderBy: "infinitive, created_at, id"},
	}
	for _, req := range cases {
		var params listVerbsParams
		if err := Bind(req, &params, verbsSchema); err == nil {
			t.Fatalf("expected error for %+v", req)
		}
	}
}

func TestBind_FallbackEqualsPrimary(t *testing.T) {
	var params listVerbsParams
	if err := Bind(request{orderBy: "id"}, &params, verbsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.PrimaryKey != "id" || params.SecondaryKey != "" {
		t.Fatalf("unexpected order %+v", params)
	}
}
