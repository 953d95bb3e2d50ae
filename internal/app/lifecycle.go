package app

import (
	"sync"

	"quill/internal/editor"
	"quill/internal/gui"
	"quill/internal/logger"
)

const lifecycleComponent = "Lifecycle"

type Lifecycle struct {
	session    *editor.Session
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(session *editor.Session, gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		session:    session,
		guiManager: gm,
		logger:     log,
	}
}

// Shutdown releases the session's images and stops the GUI manager. Later
// calls do nothing.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info(lifecycleComponent, "shutdown sequence initiated", map[string]interface{}{
			"images": len(l.session.Images()),
		})

		if l.guiManager != nil {
			l.guiManager.Shutdown()
			l.logger.Debug(lifecycleComponent, "GUI manager shutdown completed", nil)
		}

		if l.session != nil {
			l.session.Release()
			l.logger.Debug(lifecycleComponent, "session released", nil)
		}

		l.logger.Info(lifecycleComponent, "shutdown sequence completed", nil)
	})
}
