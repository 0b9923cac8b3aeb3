//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/fitconnect/internal/actuals"
	"github.com/2beens/fitconnect/internal/adherence"
	"github.com/2beens/fitconnect/internal/auth"
	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/internal/goals"
	"github.com/2beens/fitconnect/internal/plans"
	"github.com/2beens/fitconnect/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestMemberFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.redisDataCleanup(ctx))

	trainerToken := s.doLogin(ctx, t, testTrainerUsername)
	memberToken := s.doLogin(ctx, t, testMemberUsername)
	otherToken := s.doLogin(ctx, t, testOtherUsername)

	memberPath := func(format string, args ...any) string {
		return fmt.Sprintf("/members/%d", s.memberID) + fmt.Sprintf(format, args...)
	}
	day := pkg.MustParseDate("2024-03-10")

	newPlan := plans.WorkoutPlan{
		Name:      "March strength block",
		FocusArea: "strength",
		StartDate: pkg.MustParseDate("2024-03-01"),
		EndDate:   pkg.MustParseDate("2024-03-31"),
		Exercises: []plans.PlanExercise{
			{ExerciseID: 1, Sets: 4, Reps: "6-10", OrderIndex: 0},
			{ExerciseID: 2, Sets: 3, Reps: "10-20", OrderIndex: 1},
		},
	}

	t.Run("trainer assignment", func(t *testing.T) {
		// not a client yet
		resp := s.doRequest(ctx, t, "POST", memberPath("/plans/workout"), trainerToken, newPlan)
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = s.doRequest(ctx, t, "PUT", memberPath("/trainer"), otherToken, auth.AssignTrainerRequest{TrainerID: s.trainerID})
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = s.doRequest(ctx, t, "PUT", memberPath("/trainer"), memberToken, auth.AssignTrainerRequest{TrainerID: s.otherMemberID})
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = s.doRequest(ctx, t, "PUT", memberPath("/trainer"), memberToken, auth.AssignTrainerRequest{TrainerID: s.trainerID})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var assignment auth.Assignment
		decodeBody(t, resp, &assignment)
		resp.Body.Close()
		assert.Equal(t, auth.AssignmentActive, assignment.Status)

		resp = s.doRequest(ctx, t, "GET", "/trainers/me/clients", trainerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var clients auth.ClientsResponse
		decodeBody(t, resp, &clients)
		resp.Body.Close()
		assert.Equal(t, []int{s.memberID}, clients.Clients)
	})

	var plan plans.WorkoutPlan
	t.Run("plans", func(t *testing.T) {
		// members cannot assign plans
		resp := s.doRequest(ctx, t, "POST", memberPath("/plans/workout"), memberToken, newPlan)
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = s.doRequest(ctx, t, "POST", memberPath("/plans/workout"), trainerToken, newPlan)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &plan)
		resp.Body.Close()
		require.Positive(t, plan.ID)
		assert.Equal(t, plans.StatusActive, plan.Status)
		assert.Equal(t, s.trainerID, plan.TrainerID)

		// overlapping active plan is rejected
		resp = s.doRequest(ctx, t, "POST", memberPath("/plans/workout"), trainerToken, newPlan)
		resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp = s.doRequest(ctx, t, "GET", memberPath("/plans/workout/date/%s", day), memberToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var forDate plans.PlanForDateResponse
		decodeBody(t, resp, &forDate)
		resp.Body.Close()
		require.NotNil(t, forDate.Plan)
		assert.Equal(t, plan.ID, forDate.Plan.ID)
		assert.Len(t, forDate.Plan.Exercises, 2)

		// another member cannot read it
		resp = s.doRequest(ctx, t, "GET", memberPath("/plans/workout"), otherToken, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("goal", func(t *testing.T) {
		resp := s.doRequest(ctx, t, "PUT", memberPath("/goals"), trainerToken, goals.DailyGoal{
			Date:          day,
			CalorieTarget: 2200,
			WaterIntakeMl: 1500,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("actuals", func(t *testing.T) {
		resp := s.doRequest(ctx, t, "POST", memberPath("/meals"), memberToken, actuals.MealLogEntry{
			Date: day,
			Time: "12:30",
			Slot: catalog.SlotLunch,
			Items: []actuals.MealLogItem{
				{FoodID: 1, Quantity: 2},
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var meal actuals.MealLogEntry
		decodeBody(t, resp, &meal)
		resp.Body.Close()
		assert.Equal(t, 330, meal.Totals.Calories)

		for _, amount := range []int{1000, 600} {
			resp = s.doRequest(ctx, t, "POST", memberPath("/water"), memberToken, actuals.WaterEvent{
				Date:     day,
				AmountMl: amount,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			resp.Body.Close()
		}

		resp = s.doRequest(ctx, t, "POST", fmt.Sprintf("/plans/workout/%d/complete", plan.ID), memberToken, plans.CompletePlanRequest{
			Date: day,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var completed plans.CompletePlanResponse
		decodeBody(t, resp, &completed)
		resp.Body.Close()
		assert.Equal(t, plan.ID, completed.PlanID)
		assert.Positive(t, completed.SessionID)

		// completed plans stay completed
		resp = s.doRequest(ctx, t, "POST", fmt.Sprintf("/plans/workout/%d/complete", plan.ID), memberToken, plans.CompletePlanRequest{
			Date: day,
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("adherence", func(t *testing.T) {
		resp := s.doRequest(ctx, t, "GET", memberPath("/dashboard/%s", day), memberToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var dashboard adherence.Dashboard
		decodeBody(t, resp, &dashboard)
		resp.Body.Close()
		assert.Equal(t, 330, dashboard.CaloriesConsumed)
		assert.Equal(t, 1600, dashboard.WaterTotalMl)
		require.NotNil(t, dashboard.Goal)
		assert.Equal(t, 2200, dashboard.Goal.CalorieTarget)
		assert.Equal(t, 1, dashboard.CompletedWorkoutDays)

		resp = s.doRequest(ctx, t, "GET", memberPath("/progress?from=2024-03-10&to=2024-03-16"), memberToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var progress adherence.ClientProgress
		decodeBody(t, resp, &progress)
		resp.Body.Close()
		assert.Equal(t, 7, progress.TotalDays)
		assert.Equal(t, 1, progress.WorkoutCount)
		assert.Equal(t, 1, progress.CompletedWorkoutDays)
		assert.Equal(t, 14.29, progress.CompletionRate)
		assert.Equal(t, 1, progress.MealsLoggedDays)
		assert.Equal(t, 1, progress.WaterComplianceDays)
		assert.False(t, progress.WeightChangeDefined)

		resp = s.doRequest(ctx, t, "POST", memberPath("/reports"), trainerToken, adherence.ReportRequest{
			StartDate: pkg.MustParseDate("2024-03-10"),
			EndDate:   pkg.MustParseDate("2024-03-16"),
			Feedback:  "solid first week",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var report adherence.ProgressReport
		decodeBody(t, resp, &report)
		resp.Body.Close()
		assert.Equal(t, 14.29, report.CompletionRate)
		assert.Equal(t, adherence.ReportStatusSent, report.Status)

		resp = s.doRequest(ctx, t, "GET", memberPath("/reports"), memberToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var reports []adherence.ProgressReport
		decodeBody(t, resp, &reports)
		resp.Body.Close()
		require.Len(t, reports, 1)
		assert.Equal(t, report.ID, reports[0].ID)

		resp = s.doRequest(ctx, t, "GET", fmt.Sprintf("/trainers/me/stats/%s", pkg.DateOf(time.Now().UTC())), trainerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var stats adherence.TrainerStats
		decodeBody(t, resp, &stats)
		resp.Body.Close()
		assert.Equal(t, 1, stats.PlansCompleted)
		assert.Zero(t, stats.ActivePlans)
		assert.Equal(t, 1, stats.ClientsCount)

		resp = s.doRequest(ctx, t, "GET", fmt.Sprintf("/trainers/me/stats/%s", pkg.DateOf(time.Now().UTC())), memberToken, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
