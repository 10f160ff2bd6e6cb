package main

import (
	"fmt"
	"net/http"

	"github.com/lychee-technology/minid"
	"go.uber.org/zap"
)

// CustomerResponse is returned by the customer endpoints
type CustomerResponse struct {
	ID minid.ID `json:"id"`
}

// DisableRequest is the body of POST /customers/{id}/disable
type DisableRequest struct {
	OperatorID minid.ID `json:"operatorId"`
	Reason     string   `json:"reason,omitempty"`
}

// DisableResponse echoes a decoded disable request
type DisableResponse struct {
	ID         minid.ID `json:"id"`
	OperatorID minid.ID `json:"operatorId"`
	Reason     string   `json:"reason,omitempty"`
}

// handleCreateCustomer handles POST /customers
func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := s.generator.Next()
	if err != nil {
		zap.S().Errorw("failed to generate id", "error", err)
		writeError(w, http.StatusInternalServerError, minid.ErrCodeRandomSource, "failed to generate id")
		return
	}

	zap.S().Debugw("customer created", "id", id.String())
	writeSuccess(w, http.StatusCreated, CustomerResponse{ID: id})
}

// handleGetCustomer handles GET /customers/{id}
func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	writeSuccess(w, http.StatusOK, CustomerResponse{ID: id})
}

// handleDisableCustomer handles POST /customers/{id}/disable
func (s *Server) handleDisableCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req DisableRequest
	if err := readJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errorCode(err), fmt.Sprintf("invalid json body: %v", err))
		return
	}

	if req.OperatorID.IsZero() {
		writeError(w, http.StatusBadRequest, minid.ErrCodeInvalidFormat, "operatorId is required")
		return
	}

	zap.S().Infow("customer disabled", "id", id.String(), "operatorId", req.OperatorID.String())
	writeSuccess(w, http.StatusOK, DisableResponse{
		ID:         id,
		OperatorID: req.OperatorID,
		Reason:     req.Reason,
	})
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID decodes the {id} path value, requiring the generator's prefix.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (minid.ID, bool) {
	raw := r.PathValue("id")

	id, err := parseID(raw, s.generator.Prefix())
	if err != nil {
		zap.S().Debugw("rejected id", "id", raw, "error", err)
		writeError(w, http.StatusBadRequest, errorCode(err), fmt.Sprintf("invalid id: %v", err))
		return minid.Nil, false
	}
	return id, true
}
