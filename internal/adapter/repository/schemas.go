package repository

import (
	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/pkg/filterexpr"
)

var listConjugationsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"language": {
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Language",
				filterexpr.OpIN: "Languages",
			},
			Normalize: func(s string) string { return entity.ParseLanguage(s).Code() },
		},
		"infinitive": {
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Infinitive",
				filterexpr.OpSW: "InfinitivePrefix",
				filterexpr.OpIN: "Infinitives",
			},
			Normalize: entity.NormalizeWordToken,
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: map[string]filterexpr.OrderField{
			"created_at": {Expr: "created_at"},
			"infinitive": {Expr: "infinitive"},
			"language":   {Expr: "language"},
			"id":         {Expr: "id"},
		},
	},
}

type listConjugationsParams struct {
	Language         *string
	Languages        []string
	Infinitive       *string
	InfinitivePrefix *string
	Infinitives      []string

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}
