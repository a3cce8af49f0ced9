package tlscert

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after a file event before the
// keypair is reloaded. Certificate rotation tools typically rewrite
// both files within a short window.
const DefaultDebounce = 500 * time.Millisecond

// Reloader serves a TLS keypair and reloads it when the files change.
type Reloader struct {
	certFile string
	keyFile  string

	mu   sync.RWMutex
	cert *tls.Certificate

	reloadMu sync.Mutex
	timer    *time.Timer

	debounce time.Duration
	done     chan struct{}
	logger   *slog.Logger
}

// Option configures a Reloader.
type Option func(*Reloader)

// WithLogger sets the logger for the reloader.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reloader) {
		r.logger = logger
	}
}

// WithDebounce sets the debounce window for reloads.
func WithDebounce(d time.Duration) Option {
	return func(r *Reloader) {
		r.debounce = d
	}
}

// NewReloader loads the keypair and prepares a watcher for it. The
// initial load must succeed.
func NewReloader(certFile, keyFile string, opts ...Option) (*Reloader, error) {
	r := &Reloader{
		certFile: certFile,
		keyFile:  keyFile,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.reload(); err != nil {
		return nil, fmt.Errorf("tlscert: initial load: %w", err)
	}

	return r, nil
}

// GetCertificate returns the current keypair. It implements
// tls.Config.GetCertificate.
func (r *Reloader) GetCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cert, nil
}

// TLSConfig returns a server TLS config backed by this reloader.
func (r *Reloader) TLSConfig() *tls.Config {
	return &tls.Config{
		GetCertificate: r.GetCertificate,
		MinVersion:     tls.VersionTLS12,
	}
}

// Start watches the keypair files for changes. Blocks until Stop() is
// called.
func (r *Reloader) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tlscert: create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories, not the files, to catch atomic renames.
	certDir := filepath.Dir(r.certFile)
	if err := watcher.Add(certDir); err != nil {
		return fmt.Errorf("tlscert: watch %s: %w", certDir, err)
	}
	if keyDir := filepath.Dir(r.keyFile); keyDir != certDir {
		if err := watcher.Add(keyDir); err != nil {
			return fmt.Errorf("tlscert: watch %s: %w", keyDir, err)
		}
	}

	r.logger.Info("certificate reloader started",
		"cert_file", r.certFile,
		"key_file", r.keyFile,
	)

	certBase := filepath.Base(r.certFile)
	keyBase := filepath.Base(r.keyFile)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			base := filepath.Base(event.Name)
			if base != certBase && base != keyBase {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.logger.Debug("certificate file changed",
				"file", event.Name,
				"op", event.Op.String(),
			)
			r.scheduleReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("certificate watcher error", "error", err)

		case <-r.done:
			return nil
		}
	}
}

// StartAsync starts watching in a goroutine.
func (r *Reloader) StartAsync() {
	go func() {
		if err := r.Start(); err != nil {
			r.logger.Error("certificate reloader stopped with error", "error", err)
		}
	}()
}

// Stop stops watching. The last loaded keypair stays available.
func (r *Reloader) Stop() {
	close(r.done)

	r.reloadMu.Lock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.reloadMu.Unlock()
}

// scheduleReload arms the debounce timer; rotation tools rewriting
// both files produce a single reload.
func (r *Reloader) scheduleReload() {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.debounce, func() {
		if err := r.reload(); err != nil {
			r.logger.Error("certificate reload failed, keeping previous keypair",
				"error", err,
				"cert_file", r.certFile,
			)
		}
	})
}

func (r *Reloader) reload() error {
	cert, err := tls.LoadX509KeyPair(r.certFile, r.keyFile)
	if err != nil {
		return fmt.Errorf("load key pair: %w", err)
	}

	r.mu.Lock()
	r.cert = &cert
	r.mu.Unlock()

	r.logger.Info("certificate loaded", "cert_file", r.certFile)
	return nil
}
