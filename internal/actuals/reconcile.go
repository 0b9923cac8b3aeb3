package actuals

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type caloriesReconciler interface {
	ReconcileCalories(ctx context.Context, windowDays int) (int, error)
}

// RunCaloriesReconciler reconciles daily calorie counters every interval until ctx is done.
func RunCaloriesReconciler(ctx context.Context, r caloriesReconciler, interval time.Duration, windowDays int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debugf("calories reconciler started, every %s over %d days", interval, windowDays)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("calories reconciler stopped")
			return
		case <-ticker.C:
			fixed, err := r.ReconcileCalories(ctx, windowDays)
			if err != nil {
				log.Errorf("reconcile daily calories: %s", err)
				continue
			}
			if fixed > 0 {
				log.Warnf("reconciled %d drifted daily calorie counters", fixed)
			}
		}
	}
}
