package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "ACTIVE"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

var ErrNoActiveAssignment = errors.New("no active trainer assignment")

// Assignment links a member to the trainer allowed to author their plans and goals.
type Assignment struct {
	ID           int              `json:"id"`
	TrainerID    int              `json:"trainerId"`
	MemberID     int              `json:"memberId"`
	AssignedDate pkg.Date         `json:"assignedDate"`
	Status       AssignmentStatus `json:"status"`
}

type AssignmentsRepo struct {
	db *pgxpool.Pool
}

func NewAssignmentsRepo(db *pgxpool.Pool) *AssignmentsRepo {
	return &AssignmentsRepo{
		db: db,
	}
}

// Assign makes trainerID the member's active trainer from date on. A previous active
// assignment to another trainer is marked COMPLETED; reassigning the same trainer is a no-op.
func (r *AssignmentsRepo) Assign(ctx context.Context, trainerID, memberID int, date pkg.Date) (_ Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.assignments.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))
	span.SetAttributes(attribute.Int("member.id", memberID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Assignment{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var role Role
	if err := tx.QueryRow(ctx, `SELECT role FROM accounts WHERE id = $1`, trainerID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Assignment{}, pkg.Validationf("trainer %d not found", trainerID)
		}
		return Assignment{}, fmt.Errorf("trainer role [query row]: %w", err)
	}
	if role != RoleTrainer {
		return Assignment{}, pkg.Validationf("account %d is not a trainer", trainerID)
	}

	current := Assignment{}
	err = tx.QueryRow(
		ctx,
		`
			SELECT id, trainer_id, member_id, assigned_date, status
			FROM trainer_assignments
			WHERE member_id = $1 AND status = 'ACTIVE'
			FOR UPDATE
		`,
		memberID,
	).Scan(&current.ID, &current.TrainerID, &current.MemberID, &current.AssignedDate, &current.Status)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return Assignment{}, fmt.Errorf("active assignment [query row]: %w", err)
	case current.TrainerID == trainerID:
		return current, nil
	default:
		if _, err := tx.Exec(
			ctx,
			`UPDATE trainer_assignments SET status = 'COMPLETED', updated_at = now() WHERE id = $1`,
			current.ID,
		); err != nil {
			return Assignment{}, fmt.Errorf("complete previous assignment: %w", err)
		}
	}

	a := Assignment{TrainerID: trainerID, MemberID: memberID, AssignedDate: date, Status: AssignmentActive}
	if err := tx.QueryRow(
		ctx,
		`
			INSERT INTO trainer_assignments (trainer_id, member_id, assigned_date, status)
			VALUES ($1, $2, $3, 'ACTIVE')
			RETURNING id
		`,
		trainerID, memberID, date,
	).Scan(&a.ID); err != nil {
		return Assignment{}, fmt.Errorf("insert assignment: %w", err)
	}

	return a, nil
}

// Cancel ends the member's active assignment.
func (r *AssignmentsRepo) Cancel(ctx context.Context, memberID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.assignments.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE trainer_assignments SET status = 'CANCELLED', updated_at = now() WHERE member_id = $1 AND status = 'ACTIVE'`,
		memberID,
	)
	if err != nil {
		return fmt.Errorf("cancel assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActiveAssignment
	}
	return nil
}

// ActiveClients lists the members currently assigned to the trainer, ordered by id.
func (r *AssignmentsRepo) ActiveClients(ctx context.Context, trainerID int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.assignments.clients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT member_id FROM trainer_assignments WHERE trainer_id = $1 AND status = 'ACTIVE' ORDER BY member_id`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("active clients [query]: %w", err)
	}
	defer rows.Close()

	clients := []int{}
	for rows.Next() {
		var memberID int
		if err := rows.Scan(&memberID); err != nil {
			return nil, fmt.Errorf("active clients [rows scan]: %w", err)
		}
		clients = append(clients, memberID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active clients [rows error]: %w", err)
	}

	return clients, nil
}

type clientsLister interface {
	ActiveClients(ctx context.Context, trainerID int) ([]int, error)
}

var _ Checker = (*ClientsChecker)(nil)

// ClientsChecker resolves sessions through the wrapped Checker and fills in the
// assigned clients of trainer identities.
type ClientsChecker struct {
	checker     Checker
	assignments clientsLister
}

func NewClientsChecker(checker Checker, assignments clientsLister) *ClientsChecker {
	return &ClientsChecker{
		checker:     checker,
		assignments: assignments,
	}
}

func (c *ClientsChecker) Resolve(ctx context.Context, token string) (Identity, error) {
	identity, err := c.checker.Resolve(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	if !identity.IsTrainer() {
		return identity, nil
	}

	clients, err := c.assignments.ActiveClients(ctx, identity.AccountID)
	if err != nil {
		return Identity{}, fmt.Errorf("trainer %d clients: %w", identity.AccountID, err)
	}
	identity.Clients = clients
	return identity, nil
}
