package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=assignments_mocks_test.go -package=auth_test

type assignments interface {
	Assign(ctx context.Context, trainerID, memberID int, date pkg.Date) (Assignment, error)
	Cancel(ctx context.Context, memberID int) error
	ActiveClients(ctx context.Context, trainerID int) ([]int, error)
}

type AssignTrainerRequest struct {
	TrainerID int `json:"trainerId"`
}

type ClientsResponse struct {
	TrainerID int   `json:"trainerId"`
	Clients   []int `json:"clients"`
}

type AssignmentsHandler struct {
	assignments assignments
}

func NewAssignmentsHandler(assignments assignments) *AssignmentsHandler {
	return &AssignmentsHandler{
		assignments: assignments,
	}
}

// HandleAssignTrainer lets a member pick their trainer.
func (h *AssignmentsHandler) HandleAssignTrainer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.assign_trainer")
	defer span.End()

	identity, ok := IdentityFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if identity.IsTrainer() {
		http.Error(w, "trainers cannot assign themselves", http.StatusForbidden)
		return
	}

	memberID, err := ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", HTTPStatus(err))
		return
	}

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}
	var req AssignTrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if req.TrainerID <= 0 {
		http.Error(w, "trainer id required", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignments.Assign(ctx, req.TrainerID, memberID, pkg.Today())
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("assign trainer %d to member %d: %s", req.TrainerID, memberID, err)
		http.Error(w, "failed to assign trainer", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, assignment, http.StatusOK)
}

// HandleCancelAssignment ends the member's active assignment. Both the member
// and the assigned trainer may do so.
func (h *AssignmentsHandler) HandleCancelAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.cancel_assignment")
	defer span.End()

	memberID, err := ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", HTTPStatus(err))
		return
	}

	if err := h.assignments.Cancel(ctx, memberID); err != nil {
		if errors.Is(err, ErrNoActiveAssignment) {
			http.Error(w, "no active trainer", http.StatusNotFound)
			return
		}
		log.Errorf("cancel assignment of member %d: %s", memberID, err)
		http.Error(w, "failed to cancel assignment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AssignmentsHandler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.list_clients")
	defer span.End()

	trainer, err := RequireTrainer(ctx)
	if err != nil {
		http.Error(w, "no can do", HTTPStatus(err))
		return
	}

	clients, err := h.assignments.ActiveClients(ctx, trainer.AccountID)
	if err != nil {
		log.Errorf("list clients of trainer %d: %s", trainer.AccountID, err)
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ClientsResponse{TrainerID: trainer.AccountID, Clients: clients}, http.StatusOK)
}
