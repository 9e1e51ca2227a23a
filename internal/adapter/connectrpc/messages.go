package connectrpc

import "time"

type ConjugateRequest struct {
	Infinitive string `json:"infinitive"`
	Language   string `json:"language"`
}

type GetConjugationRequest struct {
	Language   string `json:"language"`
	Infinitive string `json:"infinitive"`
}

type ListConjugationsRequest struct {
	PageNo   int32  `json:"page_no,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
	Filter   string `json:"filter,omitempty"`
	OrderBy  string `json:"order_by,omitempty"`
}

func (r *ListConjugationsRequest) GetFilter() string {
	if r == nil {
		return ""
	}
	return r.Filter
}

func (r *ListConjugationsRequest) GetOrderBy() string {
	if r == nil {
		return ""
	}
	return r.OrderBy
}

type PersonForm struct {
	Person  string `json:"person"`
	Pronoun string `json:"pronoun"`
	Form    string `json:"form"`
}

type TenseTable struct {
	Tense string       `json:"tense"`
	Forms []PersonForm `json:"forms"`
}

type Conjugation struct {
	ID          int64        `json:"id,omitempty"`
	Infinitive  string       `json:"infinitive"`
	Language    string       `json:"language"`
	Translation string       `json:"translation,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	Tenses      []TenseTable `json:"tenses"`
}

type Pagination struct {
	PageNo   int32 `json:"page_no"`
	PageSize int32 `json:"page_size"`
	Total    int64 `json:"total"`
}

type ListConjugationsResponse struct {
	Items      []Conjugation `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
