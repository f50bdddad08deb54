package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/internal/logging"
	"github.com/fivetwenty-io/wms-client/internal/notify"
	"github.com/fivetwenty-io/wms-client/internal/progress"
	"github.com/fivetwenty-io/wms-client/internal/session"
	"github.com/fivetwenty-io/wms-client/internal/store"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
	"github.com/fivetwenty-io/wms-client/pkg/wmsclient"
)

// userAgent is sent by every CLI request.
const userAgent = "wms-cli"

// Settings is everything needed to build a Runtime.
type Settings struct {
	API         string
	Token       string
	Warehouse   string
	StateFile   string
	NATSURL     string
	NATSSubject string
	Timeout     time.Duration
	Verbose     bool
	NoColor     bool

	// Stderr receives notifications, the progress bar and logs.
	Stderr io.Writer
}

// settingsFromViper resolves Settings from flags, environment and config.
func settingsFromViper() (*Settings, error) {
	config := loadConfig()

	stateFile := config.StateFile
	if stateFile == "" {
		configDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}

		stateFile = filepath.Join(configDir, stateFileName)
	}

	return &Settings{
		API:         config.API,
		Token:       viper.GetString(KeyToken),
		Warehouse:   config.Warehouse,
		StateFile:   stateFile,
		NATSURL:     config.NATSURL,
		NATSSubject: config.NATSSubject,
		Timeout:     config.Timeout,
		Verbose:     viper.GetBool(KeyVerbose),
		NoColor:     config.NoColor,
		Stderr:      os.Stderr,
	}, nil
}

// Runtime is a configured client plus the local state behind it.
type Runtime struct {
	Client wms.Client
	State  *store.FileStore
	Logger *logging.Logger

	session *persistedSession
	nats    *nats.Conn
	cancel  context.CancelFunc
}

// NewRuntime builds a client whose token and warehouse live in the state
// file. --token and --warehouse override the stored values for this
// invocation only.
func NewRuntime(ctx context.Context, settings *Settings) (*Runtime, error) {
	if settings.API == "" {
		return nil, constants.ErrNoAPIEndpoint
	}

	stderr := settings.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level := zerolog.WarnLevel
	if settings.Verbose {
		level = zerolog.DebugLevel
	}

	logger := logging.NewConsole(stderr, level, settings.NoColor)

	state, err := store.NewFileStore(settings.StateFile)
	if err != nil {
		return nil, fmt.Errorf("opening state file: %w", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)

	err = state.Watch(watchCtx, func(err error) {
		if err != nil {
			logger.Warn("failed to reload state file", map[string]interface{}{"error": err.Error()})

			return
		}

		logger.Debug("state file reloaded", map[string]interface{}{"path": state.Path()})
	})
	if err != nil {
		logger.Warn("state file will not be watched", map[string]interface{}{"error": err.Error()})
	}

	overrides := make(map[string]string)
	if settings.Token != "" {
		overrides[constants.StorageKeyToken] = settings.Token
	}

	if settings.Warehouse != "" {
		overrides[constants.StorageKeyWarehouseID] = settings.Warehouse
	}

	storage := newOverlayStore(state, overrides)

	runtime := &Runtime{
		State:   state,
		Logger:  logger,
		session: newPersistedSession(session.New(settings.Token), storage, logger),
		cancel:  cancel,
	}

	notifier := notify.Multi{notify.NewConsole(stderr)}

	if settings.NATSURL != "" {
		conn, err := notify.ConnectNATS(settings.NATSURL)
		if err != nil {
			logger.Warn("notifications will not be published", map[string]interface{}{"error": err.Error()})
		} else {
			runtime.nats = conn
			notifier = append(notifier, notify.NewNATS(conn, settings.NATSSubject, logger))
		}
	}

	client, err := wmsclient.New(ctx, &wms.Config{
		APIEndpoint: settings.API,
		Timeout:     settings.Timeout,
		UserAgent:   userAgent,
		Debug:       settings.Verbose,
		Logger:      logger,
		Session:     runtime.session,
		Storage:     storage,
		Notifier:    notifier,
		Progress:    newProgress(stderr),
	})
	if err != nil {
		runtime.Close()

		return nil, err
	}

	runtime.Client = client

	return runtime, nil
}

// Session returns the session shared by every call of this runtime.
func (r *Runtime) Session() wms.SessionStore {
	return r.session
}

// Close stops watching the state file and drains the NATS connection.
func (r *Runtime) Close() {
	if r.cancel != nil {
		r.cancel()
	}

	if r.nats != nil {
		err := r.nats.Drain()
		if err != nil {
			r.nats.Close()
		}
	}
}

func newProgress(w io.Writer) *progress.Bar {
	if f, ok := w.(*os.File); ok {
		return progress.New(f)
	}

	return progress.NewWriter(w, false)
}

// withRuntime builds a runtime from the command's configuration, runs fn and
// releases the runtime.
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *Runtime) error) error {
	settings, err := settingsFromViper()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := NewRuntime(ctx, settings)
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(ctx, rt)
}

// persistedSession mirrors token changes into local storage so a login
// survives the process and a destroyed session does not linger on disk.
type persistedSession struct {
	*session.State

	storage wms.LocalStore
	logger  wms.Logger
}

func newPersistedSession(state *session.State, storage wms.LocalStore, logger wms.Logger) *persistedSession {
	return &persistedSession{State: state, storage: storage, logger: logger}
}

// SetToken implements wms.SessionStore.
func (s *persistedSession) SetToken(token string) {
	s.State.SetToken(token)

	err := s.storage.Set(constants.StorageKeyToken, token)
	if err != nil {
		s.logger.Warn("failed to persist token", map[string]interface{}{"error": err.Error()})
	}
}

// Destroy implements wms.SessionStore.
func (s *persistedSession) Destroy() {
	s.State.Destroy()

	err := s.storage.Delete(constants.StorageKeyToken)
	if err != nil {
		s.logger.Warn("failed to clear persisted token", map[string]interface{}{"error": err.Error()})
	}
}

// overlayStore answers reads from per-invocation overrides before the
// backing store. Writes go to the backing store and drop the override.
type overlayStore struct {
	mutex     sync.RWMutex
	base      wms.LocalStore
	overrides map[string]string
}

func newOverlayStore(base wms.LocalStore, overrides map[string]string) *overlayStore {
	return &overlayStore{base: base, overrides: overrides}
}

// Get implements wms.LocalStore.
func (s *overlayStore) Get(key string) (string, bool) {
	s.mutex.RLock()
	value, ok := s.overrides[key]
	s.mutex.RUnlock()

	if ok {
		return value, true
	}

	return s.base.Get(key)
}

// Set implements wms.LocalStore.
func (s *overlayStore) Set(key, value string) error {
	s.mutex.Lock()
	delete(s.overrides, key)
	s.mutex.Unlock()

	return s.base.Set(key, value)
}

// Delete implements wms.LocalStore.
func (s *overlayStore) Delete(key string) error {
	s.mutex.Lock()
	delete(s.overrides, key)
	s.mutex.Unlock()

	return s.base.Delete(key)
}
