package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type Account struct {
	ID           int
	Username     string
	PasswordHash string
	Role         Role
}

type AccountsRepo struct {
	db *pgxpool.Pool
}

func NewAccountsRepo(db *pgxpool.Pool) *AccountsRepo {
	return &AccountsRepo{
		db: db,
	}
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (_ Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.accounts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var a Account
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, role FROM accounts WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("account [query row]: %w", err)
	}

	return a, nil
}

// Create stores a new account with a bcrypt hash of password.
func (r *AccountsRepo) Create(ctx context.Context, username, password string, role Role) (_ Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if username == "" || password == "" {
		return Account{}, pkg.Validationf("username and password required")
	}
	if !role.Valid() {
		return Account{}, pkg.Validationf("invalid role [%s]", role)
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	a := Account{Username: username, PasswordHash: hash, Role: role}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO accounts (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id`,
		username, hash, string(role),
	).Scan(&a.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return Account{}, ErrAccountExists
		}
		return Account{}, fmt.Errorf("insert account: %w", err)
	}

	return a, nil
}
