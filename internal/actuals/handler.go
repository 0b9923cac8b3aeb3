package actuals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=actuals_mocks_test.go -package=actuals_test

type actualsService interface {
	CreateWorkoutSession(ctx context.Context, session WorkoutSession) (WorkoutSession, error)
	AppendSetLogs(ctx context.Context, sessionID int, logs []SetLog) ([]SetLog, error)
	RecordWorkout(ctx context.Context, session WorkoutSession, logs []SetLog) (WorkoutSession, error)
	GetSession(ctx context.Context, id int) (WorkoutSession, error)
	GetSessionsForDate(ctx context.Context, memberID int, date pkg.Date) ([]WorkoutSession, error)
	GetSessionLogs(ctx context.Context, sessionID int) ([]SetLog, error)

	LogMeal(ctx context.Context, entry MealLogEntry) (MealLogEntry, error)
	GetMealLog(ctx context.Context, id int) (MealLogEntry, error)
	DeleteMealLog(ctx context.Context, id int) error
	GetMealsForDate(ctx context.Context, memberID int, date pkg.Date) ([]MealLogEntry, error)

	LogWeight(ctx context.Context, sample WeightSample) (WeightSample, error)
	GetWeightHistory(ctx context.Context, memberID int, from, to pkg.Date) ([]WeightSample, error)

	RecordWaterEvent(ctx context.Context, event WaterEvent) (WaterEvent, error)
	GetWaterEvent(ctx context.Context, id int) (WaterEvent, error)
	DeleteWaterEvent(ctx context.Context, id int) error
	GetWaterEventsForDate(ctx context.Context, memberID int, date pkg.Date) ([]WaterEvent, error)
	GetWaterHistory(ctx context.Context, memberID int, days int) ([]WaterDay, error)
}

type AppendLogsRequest struct {
	Logs []SetLog `json:"logs"`
}

type WaterDayResponse struct {
	Date    pkg.Date     `json:"date"`
	TotalMl int          `json:"totalMl"`
	Events  []WaterEvent `json:"events"`
}

type Handler struct {
	service actualsService
}

func NewHandler(service actualsService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorStatus(err error) int {
	if status := auth.HTTPStatus(err); status != 0 {
		return status
	}
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrMealLogNotFound),
		errors.Is(err, ErrWaterEventNotFound):
		return http.StatusNotFound
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

func idPathVar(r *http.Request) (int, error) {
	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		return 0, pkg.Validationf("id: %s", err)
	}
	return id, nil
}

// sessionForCaller loads the {id} session and checks the caller may access its member.
func (h *Handler) sessionForCaller(ctx context.Context, r *http.Request) (WorkoutSession, error) {
	id, err := idPathVar(r)
	if err != nil {
		return WorkoutSession{}, err
	}
	session, err := h.service.GetSession(ctx, id)
	if err != nil {
		return WorkoutSession{}, err
	}
	if err := auth.CanAccessMember(ctx, session.MemberID); err != nil {
		return WorkoutSession{}, err
	}
	return session, nil
}

// trainerRef returns the caller's id when a trainer logs on a member's behalf.
func trainerRef(ctx context.Context) *int {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok || !identity.IsTrainer() {
		return nil
	}
	id := identity.AccountID
	return &id
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.session.create")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "create session")
		return
	}

	var session WorkoutSession
	if err := decodeJSON(r, &session); err != nil {
		writeError(w, err, "create session")
		return
	}
	session.MemberID = memberID
	session.TrainerID = trainerRef(ctx)

	stored, err := h.service.CreateWorkoutSession(ctx, session)
	if err != nil {
		writeError(w, err, "failed to create session")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleRecordWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.session.record")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "record workout")
		return
	}

	var session WorkoutSession
	if err := decodeJSON(r, &session); err != nil {
		writeError(w, err, "record workout")
		return
	}
	session.MemberID = memberID
	session.TrainerID = trainerRef(ctx)
	logs := session.Logs
	session.Logs = nil

	stored, err := h.service.RecordWorkout(ctx, session, logs)
	if err != nil {
		writeError(w, err, "failed to record workout")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleAppendSetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.session.append_logs")
	defer span.End()

	session, err := h.sessionForCaller(ctx, r)
	if err != nil {
		writeError(w, err, "failed to get session")
		return
	}

	var req AppendLogsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, "append set logs")
		return
	}

	stored, err := h.service.AppendSetLogs(ctx, session.ID, req.Logs)
	if err != nil {
		writeError(w, err, "failed to append set logs")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleGetSessionLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.session.logs")
	defer span.End()

	session, err := h.sessionForCaller(ctx, r)
	if err != nil {
		writeError(w, err, "failed to get session")
		return
	}

	logs, err := h.service.GetSessionLogs(ctx, session.ID)
	if err != nil {
		log.Errorf("session %d logs: %s", session.ID, err)
		logs = []SetLog{}
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleGetSessionsForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.session.for_date")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "sessions for date")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	sessions, err := h.service.GetSessionsForDate(ctx, memberID, date)
	if err != nil {
		log.Errorf("sessions for member %d [%s]: %s", memberID, date, err)
		sessions = []WorkoutSession{}
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.meal.log")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "log meal")
		return
	}

	var entry MealLogEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, err, "log meal")
		return
	}
	entry.MemberID = memberID

	stored, err := h.service.LogMeal(ctx, entry)
	if err != nil {
		writeError(w, err, "failed to log meal")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleGetMealsForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.meal.for_date")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "meals for date")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	meals, err := h.service.GetMealsForDate(ctx, memberID, date)
	if err != nil {
		log.Errorf("meals for member %d [%s]: %s", memberID, date, err)
		meals = []MealLogEntry{}
	}

	pkg.WriteJSON(w, meals, http.StatusOK)
}

func (h *Handler) HandleDeleteMealLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.meal.delete")
	defer span.End()

	id, err := idPathVar(r)
	if err != nil {
		writeError(w, err, "delete meal log")
		return
	}
	entry, err := h.service.GetMealLog(ctx, id)
	if err != nil {
		writeError(w, err, "failed to get meal log")
		return
	}
	if err := auth.CanAccessMember(ctx, entry.MemberID); err != nil {
		writeError(w, err, "delete meal log")
		return
	}

	if err := h.service.DeleteMealLog(ctx, id); err != nil {
		writeError(w, err, "failed to delete meal log")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleLogWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.weight.log")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "log weight")
		return
	}

	var sample WeightSample
	if err := decodeJSON(r, &sample); err != nil {
		writeError(w, err, "log weight")
		return
	}
	sample.MemberID = memberID

	stored, err := h.service.LogWeight(ctx, sample)
	if err != nil {
		writeError(w, err, "failed to log weight")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleGetWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.weight.history")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "weight history")
		return
	}
	from, to, err := pkg.DateRangeQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	samples, err := h.service.GetWeightHistory(ctx, memberID, from, to)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("weight history for member %d: %s", memberID, err)
		samples = []WeightSample{}
	}

	pkg.WriteJSON(w, samples, http.StatusOK)
}

func (h *Handler) HandleRecordWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.water.record")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "record water")
		return
	}

	var event WaterEvent
	if err := decodeJSON(r, &event); err != nil {
		writeError(w, err, "record water")
		return
	}
	event.MemberID = memberID

	stored, err := h.service.RecordWaterEvent(ctx, event)
	if err != nil {
		writeError(w, err, "failed to record water")
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleDeleteWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.water.delete")
	defer span.End()

	id, err := idPathVar(r)
	if err != nil {
		writeError(w, err, "delete water event")
		return
	}
	event, err := h.service.GetWaterEvent(ctx, id)
	if err != nil {
		writeError(w, err, "failed to get water event")
		return
	}
	if err := auth.CanAccessMember(ctx, event.MemberID); err != nil {
		writeError(w, err, "delete water event")
		return
	}

	if err := h.service.DeleteWaterEvent(ctx, id); err != nil {
		writeError(w, err, "failed to delete water event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetWaterForDate returns the day's events and their live total.
func (h *Handler) HandleGetWaterForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.water.for_date")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "water for date")
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	resp := WaterDayResponse{Date: date, Events: []WaterEvent{}}
	events, err := h.service.GetWaterEventsForDate(ctx, memberID, date)
	if err != nil {
		log.Errorf("water for member %d [%s]: %s", memberID, date, err)
	} else {
		resp.Events = events
		for _, e := range events {
			resp.TotalMl += e.AmountMl
		}
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleGetWaterHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.actuals.water.history")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		writeError(w, err, "water history")
		return
	}

	days := 0
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err = strconv.Atoi(daysParam)
		if err != nil {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
	}

	history, err := h.service.GetWaterHistory(ctx, memberID, days)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("water history for member %d: %s", memberID, err)
		history = []WaterDay{}
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}
