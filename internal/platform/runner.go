// Package platform connects a game session to the outside world: it steps the
// game once per frame, logs what happened and records points to the history
// store. Backends (terminal, window, SSH) own the frame clock, input and
// drawing surface and drive a Runner.
package platform

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pongping/internal/core"
	"github.com/vovakirdan/pongping/internal/games/pong"
	"github.com/vovakirdan/pongping/internal/storage"
)

// Runner drives one game session.
type Runner struct {
	game    *pong.Game
	store   *storage.Store
	logger  *log.Logger
	backend string

	key       string
	sessionID int64 // 0 when the session is not recorded
	runtime   core.RuntimeConfig
	last      core.StepResult
}

// NewRunner creates a runner. store may be nil, in which case nothing is recorded.
func NewRunner(game *pong.Game, store *storage.Store, logger *log.Logger, backend string) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	key := uuid.NewString()
	return &Runner{
		game:    game,
		store:   store,
		logger:  logger.With("session", key[:8]),
		backend: backend,
		key:     key,
	}
}

// Start resets the game and opens a history session.
// A zero seed is replaced by a time-based one.
func (r *Runner) Start(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	r.runtime = rc
	r.game.Reset(rc)
	r.last = core.StepResult{State: r.game.State()}

	r.logger.Info("session started", "backend", r.backend, "seed", rc.Seed,
		"width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate)

	if r.store == nil {
		return
	}
	id, err := r.store.BeginSession(r.key, r.backend)
	if err != nil {
		r.logger.Warn("history disabled for this session", "error", err)
		return
	}
	r.sessionID = id
}

// Frame advances the game by one frame.
func (r *Runner) Frame(in core.KeyState) core.StepResult {
	res := r.game.Step(in)
	r.last = res

	if res.Started {
		r.logger.Debug("rally started", "score1", res.State.Score1, "score2", res.State.Score2)
	}
	if res.Scored != core.PlayerNone {
		r.logger.Info("point scored",
			"scorer", res.Scored,
			"score1", res.State.Score1,
			"score2", res.State.Score2,
			"rally_frames", res.Rally,
		)
		r.record(res)
	}
	return res
}

// record stores a point. Failures are logged and never interrupt the game.
func (r *Runner) record(res core.StepResult) {
	if r.store == nil || r.sessionID == 0 {
		return
	}
	if err := r.store.RecordPoint(r.sessionID, res.Scored, res.State.Score1, res.State.Score2, res.Rally); err != nil {
		r.logger.Warn("could not record point", "error", err)
	}
}

// Draw renders the current frame.
func (r *Runner) Draw(dst core.Surface) {
	r.game.Draw(dst)
}

// Runtime returns the configuration the session was started with.
func (r *Runner) Runtime() core.RuntimeConfig {
	return r.runtime
}

// Last returns the result of the most recent frame.
func (r *Runner) Last() core.StepResult {
	return r.last
}

// SessionID returns the history record ID, or 0 when the session is not recorded.
func (r *Runner) SessionID() int64 {
	return r.sessionID
}

// Close stores the final score pair.
func (r *Runner) Close() error {
	st := r.game.State()
	r.logger.Info("session ended", "score1", st.Score1, "score2", st.Score2)

	if r.store == nil || r.sessionID == 0 {
		return nil
	}
	err := r.store.EndSession(r.sessionID, st.Score1, st.Score2)
	r.sessionID = 0
	return err
}
