package cron

import (
	"context"
	"log/slog"
	"time"
)

// IdleSweeper drops sessions unused for longer than maxIdle.
type IdleSweeper interface {
	SweepIdle(maxIdle time.Duration) int
}

// TokenPurger forgets revoked tokens that have expired anyway.
type TokenPurger interface {
	PurgeExpired(now time.Time) int
}

type SessionJobs struct {
	sessions    IdleSweeper
	tokens      TokenPurger
	idleTimeout time.Duration
	now         func() time.Time
}

func NewSessionJobs(sessions IdleSweeper, tokens TokenPurger, idleTimeout time.Duration) *SessionJobs {
	return &SessionJobs{
		sessions:    sessions,
		tokens:      tokens,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// SweepIdleSessions releases the roster of users that stopped making requests.
func (j *SessionJobs) SweepIdleSessions(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if removed := j.sessions.SweepIdle(j.idleTimeout); removed > 0 {
		slog.Info("Idle roster sessions removed", "count", removed)
	}
	return nil
}

// PurgeRevokedTokens trims the logout denylist.
func (j *SessionJobs) PurgeRevokedTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if purged := j.tokens.PurgeExpired(j.now()); purged > 0 {
		slog.Info("Expired revoked tokens purged", "count", purged)
	}
	return nil
}

// Register adds both jobs to s.
func (j *SessionJobs) Register(s *Scheduler, sweepInterval time.Duration) {
	s.AddJob("sweep_idle_sessions", sweepInterval, j.SweepIdleSessions)
	s.AddJob("purge_revoked_tokens", sweepInterval, j.PurgeRevokedTokens)
}
