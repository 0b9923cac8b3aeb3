package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsService interface {
	SetDailyGoal(ctx context.Context, goal DailyGoal) (DailyGoal, error)
	SetGoalsForSpan(ctx context.Context, base DailyGoal, days int) ([]DailyGoal, error)
	GetGoal(ctx context.Context, memberID int, date pkg.Date) (DailyGoal, error)
	ListGoals(ctx context.Context, memberID int, from, to pkg.Date) ([]DailyGoal, error)
}

type SpanRequest struct {
	Goal DailyGoal `json:"goal"`
	Days int       `json:"days"`
}

// GoalResponse carries the stored goal (nil when unset) and the targets in effect.
type GoalResponse struct {
	Goal    *DailyGoal `json:"goal"`
	Targets Targets    `json:"targets"`
}

type Handler struct {
	service goalsService
}

func NewHandler(service goalsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) decodeTrainerGoal(w http.ResponseWriter, r *http.Request, dst any) (trainer auth.Identity, memberID int, ok bool) {
	trainer, err := auth.RequireTrainer(r.Context())
	if err != nil {
		http.Error(w, "trainer role required", auth.HTTPStatus(err))
		return auth.Identity{}, 0, false
	}
	memberID, err = auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return auth.Identity{}, 0, false
	}

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return auth.Identity{}, 0, false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Errorf("set goal, unmarshal json params: %s", err)
		http.Error(w, "invalid goal", http.StatusBadRequest)
		return auth.Identity{}, 0, false
	}

	return trainer, memberID, true
}

func (h *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set")
	defer span.End()

	var goal DailyGoal
	trainer, memberID, ok := h.decodeTrainerGoal(w, r, &goal)
	if !ok {
		return
	}
	goal.MemberID = memberID
	goal.TrainerID = trainer.AccountID

	stored, err := h.service.SetDailyGoal(ctx, goal)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set daily goal for member %d: %s", memberID, err)
		http.Error(w, "failed to set daily goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) HandleSetGoalSpan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set_span")
	defer span.End()

	var req SpanRequest
	trainer, memberID, ok := h.decodeTrainerGoal(w, r, &req)
	if !ok {
		return
	}
	req.Goal.MemberID = memberID
	req.Goal.TrainerID = trainer.AccountID

	stored, err := h.service.SetGoalsForSpan(ctx, req.Goal, req.Days)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set goals span for member %d: %s", memberID, err)
		http.Error(w, "failed to set goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stored, http.StatusOK)
}

// HandleGetGoal never fails on a missing or unreadable goal, it answers with the default targets.
func (h *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	var resp GoalResponse
	goal, err := h.service.GetGoal(ctx, memberID, date)
	switch {
	case err == nil:
		resp.Goal = &goal
	case errors.Is(err, ErrGoalNotFound):
	default:
		log.Errorf("get goal for member %d [%s]: %s", memberID, date, err)
	}
	resp.Targets = EffectiveTargets(resp.Goal)

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return
	}
	from, to, err := pkg.DateRangeQuery(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	goals, err := h.service.ListGoals(ctx, memberID, from, to)
	if err != nil {
		log.Errorf("list goals for member %d: %s", memberID, err)
		goals = []DailyGoal{}
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}
