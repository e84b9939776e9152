package http

import festivalv1 "festboard/contracts/gen/festival/v1"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DocumentResponse struct {
	Status string `json:"status"`
	Data   struct {
		Document  festivalv1.Document `json:"document"`
		Revision  int64               `json:"revision"`
		UpdatedAt string              `json:"updated_at"`
	} `json:"data"`
}

type ReplaceDocumentRequest struct {
	Document         festivalv1.Document `json:"document"`
	ExpectedRevision *int64              `json:"expected_revision,omitempty"`
}
