package adherence

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=adherence_mocks_test.go -package=adherence_test

type adherenceService interface {
	ComputeClientProgress(ctx context.Context, memberID int, from, to pkg.Date) (ClientProgress, error)
	ComputeWorkoutCompletionRate(ctx context.Context, memberID int, from, to pkg.Date) (float64, error)
	SaveProgressReport(ctx context.Context, report ProgressReport) (ProgressReport, error)
	ListProgressReports(ctx context.Context, memberID int) ([]ProgressReport, error)
	GetMemberDashboard(ctx context.Context, memberID int, date pkg.Date) (Dashboard, error)
	GetTrainerStats(ctx context.Context, trainerID int, date pkg.Date) (TrainerStats, error)
}

type ReportRequest struct {
	StartDate pkg.Date `json:"startDate"`
	EndDate   pkg.Date `json:"endDate"`
	Feedback  string   `json:"feedback"`
}

type CompletionResponse struct {
	MemberID       int      `json:"memberId"`
	From           pkg.Date `json:"from"`
	To             pkg.Date `json:"to"`
	CompletionRate float64  `json:"completionRate"`
}

type Handler struct {
	service adherenceService
}

func NewHandler(service adherenceService) *Handler {
	return &Handler{
		service: service,
	}
}

// memberRange resolves {memberId} and the from/to query range; it writes the error response itself.
func memberRange(w http.ResponseWriter, r *http.Request) (memberID int, from, to pkg.Date, ok bool) {
	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return 0, pkg.Date{}, pkg.Date{}, false
	}
	from, to, err = pkg.DateRangeQuery(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return 0, pkg.Date{}, pkg.Date{}, false
	}
	return memberID, from, to, true
}

func (h *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.progress")
	defer span.End()

	memberID, from, to, ok := memberRange(w, r)
	if !ok {
		return
	}

	progress, err := h.service.ComputeClientProgress(ctx, memberID, from, to)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("compute progress for member %d [%s, %s]: %s", memberID, from, to, err)
		progress = ClientProgress{MemberID: memberID, From: from, To: to}
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) HandleGetCompletionRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.completion_rate")
	defer span.End()

	memberID, from, to, ok := memberRange(w, r)
	if !ok {
		return
	}

	resp := CompletionResponse{MemberID: memberID, From: from, To: to}
	rate, err := h.service.ComputeWorkoutCompletionRate(ctx, memberID, from, to)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("completion rate for member %d: %s", memberID, err)
	} else {
		resp.CompletionRate = rate
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleSaveReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.report.save")
	defer span.End()

	trainer, err := auth.RequireTrainer(ctx)
	if err != nil {
		http.Error(w, "trainer role required", auth.HTTPStatus(err))
		return
	}
	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return
	}

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("save report, unmarshal json params: %s", err)
		http.Error(w, "invalid report", http.StatusBadRequest)
		return
	}

	stored, err := h.service.SaveProgressReport(ctx, ProgressReport{
		TrainerID: trainer.AccountID,
		MemberID:  memberID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Feedback:  req.Feedback,
	})
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("save progress report for member %d: %s", memberID, err)
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.report.list")
	defer span.End()

	memberID, err := auth.ResolveMemberID(r)
	if err != nil {
		http.Error(w, "invalid member", auth.HTTPStatus(err))
		return
	}

	reports, err := h.service.ListProgressReports(ctx, memberID)
	if err != nil {
		log.Errorf("list progress reports for member %d: %s", memberID, err)
		reports = []ProgressReport{}
	}

	pkg.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.dashboard")
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

	dashboard, err := h.service.GetMemberDashboard(ctx, memberID, date)
	if err != nil {
		log.Errorf("dashboard for member %d [%s]: %s", memberID, date, err)
		dashboard = emptyDashboard(memberID, date)
	}

	pkg.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) HandleGetTrainerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adherence.trainer_stats")
	defer span.End()

	trainer, err := auth.RequireTrainer(ctx)
	if err != nil {
		http.Error(w, "trainer role required", auth.HTTPStatus(err))
		return
	}
	date, err := pkg.DatePathVar(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	stats, err := h.service.GetTrainerStats(ctx, trainer.AccountID, date)
	if err != nil {
		log.Errorf("trainer stats for %d [%s]: %s", trainer.AccountID, date, err)
		stats = TrainerStats{TrainerID: trainer.AccountID, Date: date}
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}
