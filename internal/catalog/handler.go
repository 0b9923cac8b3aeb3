package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type lookup interface {
	ListExercises(ctx context.Context, muscleGroup string) ([]Exercise, error)
	Exercise(ctx context.Context, id int) (Exercise, error)
	SearchFoods(ctx context.Context, query string) ([]Food, error)
	Food(ctx context.Context, id int) (Food, error)
}

type Handler struct {
	lookup lookup
}

func NewHandler(lookup lookup) *Handler {
	return &Handler{
		lookup: lookup,
	}
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.list")
	defer span.End()

	exercises, err := h.lookup.ListExercises(ctx, r.URL.Query().Get("muscleGroup"))
	if err != nil {
		log.Errorf("list exercises: %s", err)
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := h.lookup.Exercise(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (h *Handler) HandleSearchFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.foods.search")
	defer span.End()

	foods, err := h.lookup.SearchFoods(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Errorf("search foods: %s", err)
		foods = []Food{}
	}

	pkg.WriteJSON(w, foods, http.StatusOK)
}

func (h *Handler) HandleGetFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.foods.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid food id", http.StatusBadRequest)
		return
	}

	food, err := h.lookup.Food(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food not found", http.StatusNotFound)
			return
		}
		log.Errorf("get food %d: %s", id, err)
		http.Error(w, "failed to get food", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, food, http.StatusOK)
}
