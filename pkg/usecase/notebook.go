package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/utils/errutil"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// notebook is the working state of one device: the session record, the label
// configuration, the generated summary and the active view. Records are loaded
// lazily from the repository and written through on every change.
type notebook struct {
	mu            sync.Mutex
	repo          interfaces.Repository
	now           func() time.Time
	labelDefaults *model.LabelConfig

	loaded  bool
	session *model.Session
	labels  *model.LabelConfig
	summary string
	view    types.View

	// epoch counts session resets. Background work started before a reset
	// must not write into the session that replaced it.
	epoch uint64
}

func newNotebook(repo interfaces.Repository, now func() time.Time, labelDefaults *model.LabelConfig) *notebook {
	return &notebook{
		repo:          repo,
		now:           now,
		labelDefaults: labelDefaults,
		view:          types.ViewProfile,
	}
}

// ensureLoaded must be called with mu held. Unreadable records are replaced by defaults.
func (nb *notebook) ensureLoaded(ctx context.Context) {
	if nb.loaded {
		return
	}
	nb.session = nb.loadSession(ctx)
	nb.labels = nb.loadLabels(ctx)
	nb.loaded = true
}

func (nb *notebook) loadSession(ctx context.Context) *model.Session {
	data, err := nb.repo.Get(ctx, types.StorageKeySession)
	if err != nil {
		errutil.Warn(ctx, err, "failed to read session, starting a new one")
		return model.NewSession(nb.now())
	}
	if data == nil {
		return model.NewSession(nb.now())
	}

	s, err := model.DecodeSession(data)
	if err != nil {
		errutil.Warn(ctx, err, "discarding unreadable session")
		return model.NewSession(nb.now())
	}
	return s
}

func (nb *notebook) loadLabels(ctx context.Context) *model.LabelConfig {
	data, err := nb.repo.Get(ctx, types.StorageKeyLabels)
	if err != nil {
		errutil.Warn(ctx, err, "failed to read labels, using defaults")
		return nb.labelDefaults.Clone()
	}
	if data == nil {
		return nb.labelDefaults.Clone()
	}

	labels, err := model.DecodeLabels(nb.labelDefaults, data)
	if err != nil {
		errutil.Warn(ctx, err, "discarding unreadable labels")
		return nb.labelDefaults.Clone()
	}
	return labels
}

// saveSession must be called with mu held. The in-memory record is replaced only
// after the write succeeds.
func (nb *notebook) saveSession(ctx context.Context, s *model.Session) error {
	data, err := model.EncodeSession(s)
	if err != nil {
		return err
	}
	if err := nb.repo.Put(ctx, types.StorageKeySession, data); err != nil {
		return goerr.Wrap(err, "failed to save session", goerr.V(StorageKeyKey, types.StorageKeySession))
	}
	nb.session = s
	logging.From(ctx).Debug("session saved", "bytes", len(data))
	return nil
}

func (nb *notebook) saveLabels(ctx context.Context, labels *model.LabelConfig) error {
	data, err := model.EncodeLabels(labels)
	if err != nil {
		return err
	}
	if err := nb.repo.Put(ctx, types.StorageKeyLabels, data); err != nil {
		return goerr.Wrap(err, "failed to save labels", goerr.V(StorageKeyKey, types.StorageKeyLabels))
	}
	nb.labels = labels
	return nil
}

// mutateSession applies fn to a copy of the session and persists the result
func (nb *notebook) mutateSession(ctx context.Context, fn func(s *model.Session) error) (*model.Session, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)

	next := nb.session.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := nb.saveSession(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// snapshot returns copies of the session and labels for work done outside the lock
func (nb *notebook) snapshot(ctx context.Context) (*model.Session, *model.LabelConfig) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)
	return nb.session.Clone(), nb.labels.Clone()
}

func (nb *notebook) currentSummary() string {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	return nb.summary
}

func (nb *notebook) setSummary(text string) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.summary = text
}

// beginSummary shows placeholder as the summary and returns the session to
// summarize together with the current epoch
func (nb *notebook) beginSummary(ctx context.Context, placeholder string) (*model.Session, uint64) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)
	nb.summary = placeholder
	return nb.session.Clone(), nb.epoch
}

// setSummaryAt stores text only if no reset happened since epoch
func (nb *notebook) setSummaryAt(epoch uint64, text string) bool {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.epoch != epoch {
		return false
	}
	nb.summary = text
	return true
}

// setViewAt switches the view only if no reset happened since epoch
func (nb *notebook) setViewAt(epoch uint64, v types.View) bool {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.epoch != epoch {
		return false
	}
	nb.view = v
	return true
}

func (nb *notebook) currentView() types.View {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	return nb.view
}

func (nb *notebook) setView(v types.View) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.view = v
}
