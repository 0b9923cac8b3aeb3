package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/2beens/fitconnect/pkg"
)

type Role string

const (
	RoleTrainer Role = "TRAINER"
	RoleMember  Role = "MEMBER"
)

func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleMember
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Identity is the caller behind a session token.
// For trainers, Clients holds the members with an ACTIVE assignment to them.
type Identity struct {
	AccountID int   `json:"accountId"`
	Role      Role  `json:"role"`
	Clients   []int `json:"clients,omitempty"`
}

func (i Identity) IsTrainer() bool {
	return i.Role == RoleTrainer
}

func (i Identity) HasClient(memberID int) bool {
	return slices.Contains(i.Clients, memberID)
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}

// ResolveMemberID reads the {memberId} path var and checks the caller may address it:
// trainers may address their assigned clients, members only themselves.
func ResolveMemberID(r *http.Request) (int, error) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		return 0, ErrUnauthenticated
	}

	memberID, err := pkg.IntPathVar(r, "memberId")
	if err != nil {
		return 0, pkg.Validationf("member id: %s", err)
	}

	if err := checkMemberAccess(identity, memberID); err != nil {
		return 0, err
	}

	return memberID, nil
}

// CanAccessMember checks the caller may read or write data owned by memberID.
func CanAccessMember(ctx context.Context, memberID int) error {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	return checkMemberAccess(identity, memberID)
}

func checkMemberAccess(identity Identity, memberID int) error {
	if identity.IsTrainer() {
		if identity.HasClient(memberID) {
			return nil
		}
		return fmt.Errorf("%w: member %d is not a client of trainer %d", ErrForbidden, memberID, identity.AccountID)
	}
	if identity.AccountID == memberID {
		return nil
	}
	return fmt.Errorf("%w: member %d cannot access member %d", ErrForbidden, identity.AccountID, memberID)
}

// RequireTrainer returns the trainer identity of the caller.
func RequireTrainer(ctx context.Context) (Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	if !identity.IsTrainer() {
		return Identity{}, fmt.Errorf("%w: trainer role required", ErrForbidden)
	}
	return identity, nil
}

// HTTPStatus maps access errors to a response code, 0 when err is not an access error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case pkg.IsValidationError(err):
		return http.StatusBadRequest
	}
	return 0
}
