package plans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansService interface {
	CreateWorkoutPlan(ctx context.Context, plan WorkoutPlan) (WorkoutPlan, error)
	GetPlan(ctx context.Context, id int) (WorkoutPlan, error)
	ListPlansForMember(ctx context.Context, memberID int) ([]WorkoutPlan, error)
	GetPlanForDate(ctx context.Context, memberID int, date pkg.Date) (WorkoutPlan, error)
	GetPlanExercises(ctx context.Context, planID int) ([]PlanExercise, error)
	UpdatePlanStatus(ctx context.Context, planID int, status Status) error
	MarkAsComplete(ctx context.Context, planID int, date pkg.Date) (int, error)
	AssignMealPlans(ctx context.Context, trainerID, memberID int, date pkg.Date, slots []MealPlan) ([]MealPlan, error)
	GetMealPlans(ctx context.Context, memberID int, date pkg.Date) ([]MealPlan, error)
}

type PlanForDateResponse struct {
	Plan *WorkoutPlan `json:"plan"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type CompletePlanRequest struct {
	Date pkg.Date `json:"date"`
}

type CompletePlanResponse struct {
	PlanID    int `json:"planId"`
	SessionID int `json:"sessionId"`
}

type AssignMealPlansRequest struct {
	Slots []MealPlan `json:"slots"`
}

type Handler struct {
	service plansService
}

func NewHandler(service plansService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorStatus(err error) int {
	if status := auth.HTTPStatus(err); status != 0 {
		return status
	}
	switch {
	case errors.Is(err, ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPlanNotActive), errors.Is(err, ErrOverlappingPlan):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error, msg string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, status)
		return
	}
	http.Error(w, err.Error(), status)
}

func decodeJSON(r *http.Request, dst any) error {
	if !pkg.IsJSONRequest(r) {
		return pkg.Validationf("invalid content type")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkg.Validationf("invalid json body: %s", err)
	}
	return nil
}

// authorizedPlan loads the {id} plan and checks the caller may access its member.
func (h *Handler) authorizedPlan(ctx context.Context, r *http.Request) (WorkoutPlan, error) {
	planID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		return WorkoutPlan{}, pkg.Validationf("plan id: %s", err)
	}
	plan, err := h.service.GetPlan(ctx, planID)
	if err != nil {
		return WorkoutPlan{}, err
	}
	if err := auth.CanAccessMember(ctx, plan.MemberID); err != nil {
		return WorkoutPlan{}, err
	}
	return plan, nil
}

func (h *Handler) HandleCreateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.create")
	defer span.End()

	trainer, err := auth.RequireTrainer(ctx)
	if err != nil {
		writeError(w, err, "create workout plan")
		return
	}
	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "create workout plan")
		return
	}

	var plan WorkoutPlan
	if err := decodeJSON(r, &plan); err != nil {
		writeError(w, err, "create workout plan")
		return
	}
	plan.TrainerID = trainer.AccountID
	plan.MemberID = memberID

	stored, err := h.service.CreateWorkoutPlan(ctx, plan)
	if err != nil {
		writeError(w, err, "failed to create workout plan")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleListWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.list")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "list workout plans")
		return
	}

	plans, err := h.service.ListPlansForMember(ctx, memberID)
	if err != nil {
		log.Errorf("list workout plans for member %d: %s", memberID, err)
		plans = []WorkoutPlan{}
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (h *Handler) HandleGetPlanForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.for_date")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "plan for date")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	var resp PlanForDateResponse
	plan, err := h.service.GetPlanForDate(ctx, memberID, date)
	switch {
	case err == nil:
		resp.Plan = &plan
	case errors.Is(err, ErrPlanNotFound):
	default:
		log.Errorf("plan for member %d [%s]: %s", memberID, date, err)
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleGetPlanExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.exercises")
	defer span.End()

	plan, err := h.authorizedPlan(ctx, r)
	if err != nil {
		writeError(w, err, "failed to get plan")
		return
	}

	exercises, err := h.service.GetPlanExercises(ctx, plan.ID)
	if err != nil {
		log.Errorf("plan %d exercises: %s", plan.ID, err)
		exercises = []PlanExercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleUpdatePlanStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.update_status")
	defer span.End()

	if _, err := auth.RequireTrainer(ctx); err != nil {
		writeError(w, err, "update plan status")
		return
	}
	plan, err := h.authorizedPlan(ctx, r)
	if err != nil {
		writeError(w, err, "failed to get plan")
		return
	}

	var req UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, "update plan status")
		return
	}

	if err := h.service.UpdatePlanStatus(ctx, plan.ID, req.Status); err != nil {
		writeError(w, err, "failed to update plan status")
		return
	}

	plan.Status = req.Status
	pkg.WriteJSON(w, plan, http.StatusOK)
}

// HandleCompletePlan accepts an optional {"date": ...} body; the session is dated today otherwise.
func (h *Handler) HandleCompletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.workout.complete")
	defer span.End()

	plan, err := h.authorizedPlan(ctx, r)
	if err != nil {
		writeError(w, err, "failed to get plan")
		return
	}

	var req CompletePlanRequest
	if pkg.IsJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
	}

	sessionID, err := h.service.MarkAsComplete(ctx, plan.ID, req.Date)
	if err != nil {
		writeError(w, err, "failed to complete plan")
		return
	}

	pkg.WriteJSON(w, CompletePlanResponse{PlanID: plan.ID, SessionID: sessionID}, http.StatusOK)
}

func (h *Handler) HandleAssignMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.meal.assign")
	defer span.End()

	trainer, err := auth.RequireTrainer(ctx)
	if err != nil {
		writeError(w, err, "assign meal plans")
		return
	}
	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "assign meal plans")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	var req AssignMealPlansRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, "assign meal plans")
		return
	}

	stored, err := h.service.AssignMealPlans(ctx, trainer.AccountID, memberID, date, req.Slots)
	if err != nil {
		writeError(w, err, "failed to assign meal plans")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) HandleGetMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.meal.get")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "get meal plans")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	mealPlans, err := h.service.GetMealPlans(ctx, memberID, date)
	if err != nil {
		log.Errorf("meal plans for member %d [%s]: %s", memberID, date, err)
		mealPlans = []MealPlan{}
	}

	pkg.WriteJSON(w, mealPlans, http.StatusOK)
}
