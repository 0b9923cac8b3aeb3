package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitconnect-session||"
	tokensSetKey     = "fitconnect-sessions"
)

var (
	ErrWrongPassword   = errors.New("wrong username or password")
	ErrInvalidSession  = errors.New("invalid session value")
	ErrSessionNotFound = errors.New("session not found")
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountsGetter interface {
	GetByUsername(ctx context.Context, username string) (Account, error)
}

type Service struct {
	accounts    accountsGetter
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	accounts accountsGetter,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		accounts:       accounts,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// session values are stored as role:accountId:createdAtUnix
func sessionValue(identity Identity, createdAt time.Time) string {
	return fmt.Sprintf("%s:%d:%d", identity.Role, identity.AccountID, createdAt.Unix())
}

func parseSessionValue(val string) (Identity, time.Time, error) {
	parts := strings.Split(val, ":")
	if len(parts) != 3 {
		return Identity{}, time.Time{}, ErrInvalidSession
	}

	role := Role(parts[0])
	if !role.Valid() {
		return Identity{}, time.Time{}, fmt.Errorf("%w: role [%s]", ErrInvalidSession, parts[0])
	}
	accountID, err := strconv.Atoi(parts[1])
	if err != nil {
		return Identity{}, time.Time{}, fmt.Errorf("%w: account id: %s", ErrInvalidSession, err)
	}
	createdAtUnix, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Identity{}, time.Time{}, fmt.Errorf("%w: created at: %s", ErrInvalidSession, err)
	}

	return Identity{AccountID: accountID, Role: role}, time.Unix(createdAtUnix, 0), nil
}

func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	account, err := as.accounts.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrWrongPassword
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	if !pkg.CheckPasswordHash(credentials.Password, account.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	identity := Identity{AccountID: account.ID, Role: account.Role}
	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(identity, createdAt), 0)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, ErrSessionNotFound
		}
		return false, err
	}

	if _, _, err := parseSessionValue(cmd.Val()); err != nil {
		return false, err
	}

	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return true, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.Get(ctx, sessionKey)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// dangling token in the set
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			log.Debugf("auth service, will clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		cmdDel := as.redisClient.Del(ctx, sessionKey)
		if err := cmdDel.Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}
}
