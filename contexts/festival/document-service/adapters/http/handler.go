package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"festboard/contexts/festival/document-service/application"
	"festboard/contexts/festival/document-service/ports"
	httptransport "festboard/contexts/festival/document-service/transport/http"
)

type Handler struct {
	Service *application.Service
	Logger  *slog.Logger
}

func (h Handler) GetDocumentHandler(ctx context.Context) (httptransport.DocumentResponse, error) {
	snapshot, err := h.Service.Load(ctx)
	if err != nil {
		return httptransport.DocumentResponse{}, err
	}
	return toDocumentResponse(snapshot), nil
}

func (h Handler) ReplaceDocumentHandler(
	ctx context.Context,
	req httptransport.ReplaceDocumentRequest,
) (httptransport.DocumentResponse, error) {
	expected := int64(-1)
	if req.ExpectedRevision != nil {
		expected = *req.ExpectedRevision
	}

	snapshot, err := h.Service.Replace(ctx, req.Document, expected)
	if err != nil {
		return httptransport.DocumentResponse{}, err
	}
	return toDocumentResponse(snapshot), nil
}

func toDocumentResponse(snapshot ports.Snapshot) httptransport.DocumentResponse {
	resp := httptransport.DocumentResponse{Status: "success"}
	resp.Data.Document = snapshot.Document
	resp.Data.Revision = snapshot.Revision
	if !snapshot.UpdatedAt.IsZero() {
		resp.Data.UpdatedAt = snapshot.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
