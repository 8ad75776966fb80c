package model

// Envelope is the success shape of every single-object response: {"data": ...}
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ListEnvelope is the success shape of paginated list endpoints
type ListEnvelope[T any] struct {
	Data []T `json:"data" validate:"dive"`
	Meta Meta `json:"meta"`
}

// Meta describes the page returned by a list endpoint
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PageQuery holds the optional pagination parameters of list endpoints
type PageQuery struct {
	Page  *int `url:"page,omitempty"`
	Limit *int `url:"limit,omitempty"`
}
