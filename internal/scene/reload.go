package scene

import (
	"log"
	"sync"

	"github.com/philipparndt/gofolio/pkg/asset"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/watcher"
)

// Reloader watches the content file and the assets it references and delivers
// freshly loaded content on Updates. Invalid edits are logged and skipped.
type Reloader struct {
	cfg     config.Config
	loader  *asset.FileLoader
	fw      *watcher.FileWatcher
	updates chan *content.Content
	mu      sync.Mutex
	closed  bool
}

// WatchContent starts hot reload for cfg. It returns nil when watching is disabled
// or there is no content file to watch.
func WatchContent(cfg config.Config, c *content.Content) (*Reloader, error) {
	if !cfg.WatchEnabled() || cfg.Content.Path == "" {
		return nil, nil
	}

	fw, err := watcher.NewFileWatcher(cfg.Debounce())
	if err != nil {
		return nil, err
	}

	r := &Reloader{
		cfg:     cfg,
		loader:  Loader(cfg),
		fw:      fw,
		updates: make(chan *content.Content, 1),
	}
	if err := r.watch(c); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return r, nil
}

// Updates delivers reloaded content; only the newest pending value is kept
func (r *Reloader) Updates() <-chan *content.Content {
	if r == nil {
		return nil
	}
	return r.updates
}

// Close stops watching and closes Updates
func (r *Reloader) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.updates)
	return r.fw.Close()
}

func (r *Reloader) assets(c *content.Content) []string {
	var files []string
	for _, e := range c.Experience {
		if e.Model != "" {
			files = append(files, r.loader.Dependencies(e.Model)...)
		}
	}
	return files
}

// watch registers the content file, which must succeed, and then each asset.
// Assets in missing directories fall back to placeholders, so they are only logged.
func (r *Reloader) watch(c *content.Content) error {
	if err := r.fw.Watch([]string{r.cfg.Content.Path}, r.changed); err != nil {
		return err
	}
	for _, f := range r.assets(c) {
		if err := r.fw.Watch([]string{f}, r.changed); err != nil {
			log.Printf("reload: skipping %s: %v", f, err)
		}
	}
	return nil
}

func (r *Reloader) changed(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	c, err := content.Load(r.cfg.Content.Path)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}

	if err := r.fw.RemoveAll(); err != nil {
		log.Printf("reload: %v", err)
	}
	if err := r.watch(c); err != nil {
		log.Printf("reload: %v", err)
	}

	// replace a value nobody has picked up yet
	select {
	case <-r.updates:
	default:
	}
	r.updates <- c
}
