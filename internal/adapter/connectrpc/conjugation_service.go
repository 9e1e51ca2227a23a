// Package connectrpc exposes the conjugation usecase over the Connect protocol
// with JSON payloads.
package connectrpc

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"connectrpc.com/connect"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/repository"
	"github.com/eslsoft/conjugator/internal/usecase"
)

const (
	// ConjugationServiceName is the fully-qualified name of the service.
	ConjugationServiceName = "conjugator.v1.ConjugationService"

	ConjugateProcedure        = "/" + ConjugationServiceName + "/Conjugate"
	GetConjugationProcedure   = "/" + ConjugationServiceName + "/GetConjugation"
	ListConjugationsProcedure = "/" + ConjugationServiceName + "/ListConjugations"
)

type ConjugationServiceServer struct {
	uc usecase.ConjugationUsecase
}

func NewConjugationServiceServer(uc usecase.ConjugationUsecase) *ConjugationServiceServer {
	return &ConjugationServiceServer{uc: uc}
}

// Conjugate runs the engine without touching storage.
func (s *ConjugationServiceServer) Conjugate(ctx context.Context, req *connect.Request[ConjugateRequest]) (*connect.Response[Conjugation], error) {
	if req.Msg == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("request required"))
	}
	result, err := s.uc.Conjugate(ctx, req.Msg.Infinitive, entity.ParseLanguage(req.Msg.Language))
	if err != nil {
		return nil, toConnectError(err)
	}
	out := toConjugation(result)
	return connect.NewResponse(&out), nil
}

func (s *ConjugationServiceServer) GetConjugation(ctx context.Context, req *connect.Request[GetConjugationRequest]) (*connect.Response[Conjugation], error) {
	if req.Msg == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("request required"))
	}
	result, err := s.uc.Get(ctx, entity.ParseLanguage(req.Msg.Language), req.Msg.Infinitive)
	if err != nil {
		return nil, toConnectError(err)
	}
	out := toStoredConjugation(result)
	return connect.NewResponse(&out), nil
}

func (s *ConjugationServiceServer) ListConjugations(ctx context.Context, req *connect.Request[ListConjugationsRequest]) (*connect.Response[ListConjugationsResponse], error) {
	if req.Msg == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("request required"))
	}
	msg := req.Msg
	query := &repository.ListConjugationQuery{
		Pagination: convertPagination(msg.PageNo, msg.PageSize),
		FilterOrder: repository.FilterOrder{
			Filter:  msg.GetFilter(),
			OrderBy: msg.GetOrderBy(),
		},
	}
	items, total, err := s.uc.List(ctx, query)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &ListConjugationsResponse{
		Items: make([]Conjugation, 0, len(items)),
		Pagination: Pagination{
			PageNo:   query.PageNo,
			PageSize: query.PageSize,
			Total:    total,
		},
	}
	for i := range items {
		resp.Items = append(resp.Items, toStoredConjugation(&items[i]))
	}
	return connect.NewResponse(resp), nil
}

// NewHandler mounts the service procedures and returns the path prefix they
// share together with the handler.
func NewHandler(svc *ConjugationServiceServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	readOpts := append(slices.Clip(opts), connect.WithIdempotency(connect.IdempotencyNoSideEffects))

	mux := http.NewServeMux()
	mux.Handle(ConjugateProcedure, connect.NewUnaryHandler(ConjugateProcedure, svc.Conjugate, opts...))
	mux.Handle(GetConjugationProcedure, connect.NewUnaryHandler(GetConjugationProcedure, svc.GetConjugation, readOpts...))
	mux.Handle(ListConjugationsProcedure, connect.NewUnaryHandler(ListConjugationsProcedure, svc.ListConjugations, readOpts...))
	return "/" + ConjugationServiceName + "/", mux
}
