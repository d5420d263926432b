package input

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader reads an input document and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Document
	onChange []func(*Document)
	onError  []func(error)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: filepath.Clean(path)}
	doc, err := LoadFile(l.path)
	if err != nil {
		return nil, err
	}
	l.current = doc

	return l, nil
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Document returns the latest successfully decoded document.
func (l *Loader) Document() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Document)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// OnError registers a callback invoked when a reload fails; the previous
// document stays current.
func (l *Loader) OnError(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = append(l.onError, fn)
}

// Reload forces an immediate re-read of the file.
func (l *Loader) Reload() (*Document, error) {
	doc, err := LoadFile(l.path)
	if err != nil {
		l.mu.RLock()
		callbacks := append([]func(error){}, l.onError...)
		l.mu.RUnlock()
		for _, fn := range callbacks {
			fn(err)
		}

		return nil, err
	}

	l.mu.Lock()
	l.current = doc
	callbacks := append([]func(*Document){}, l.onChange...)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(doc)
	}

	return doc, nil
}

// Watch starts a background goroutine that reloads the document on file
// changes. The parent directory is watched so that editors replacing the file
// via rename are picked up. Call stop to release the watcher.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("input watcher: %w", err)
	}
	dir := filepath.Dir(l.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("input watcher add %s: %w", dir, err)
	}

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != l.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					_, _ = l.Reload()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.mu.RLock()
				callbacks := append([]func(error){}, l.onError...)
				l.mu.RUnlock()
				for _, fn := range callbacks {
					fn(fmt.Errorf("input watcher: %w", err))
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}, nil
}
