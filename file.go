package gclp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// LiveUpdateOpt restricts L in File[T, L]. It is implemented by
// EnableLiveUpdate and DisableLiveUpdate only.
type LiveUpdateOpt interface {
	isWatched() bool
}

var (
	_ ParseOnce = &File[any, EnableLiveUpdate]{}
	_ ParseOnce = &File[any, DisableLiveUpdate]{}
)

type EnableLiveUpdate struct{}

func (EnableLiveUpdate) isWatched() bool { return true }

type DisableLiveUpdate struct{}

func (DisableLiveUpdate) isWatched() bool { return false }

var errFileLoaded = errors.New("file is already loaded, use a new File")

// File is a parameter value naming a configuration file. Parsing the
// parameter decodes the file into a T, as JSON, YAML or TOML depending on
// the extension, trying each in turn when the extension says nothing.
// A File[[]byte, L] holds the raw content.
//
// Declare it as *File[T, L]. With EnableLiveUpdate the file is watched and
// reloaded on change; Get always returns the latest decoded value.
type File[T any, L LiveUpdateOpt] struct {
	loaded atomic.Bool
	path   string

	// Swapped as a whole on reload, so a *T obtained from Get stays valid
	// and unchanged.
	value atomic.Pointer[T]

	liveUpdate L
	events     chan fsnotify.Event
	closeOnce  sync.Once
	done       chan struct{}
}

type decodeFn func(data []byte, v any) error

// FromString loads the file at path. A File loads once.
func (f *File[T, L]) FromString(path string) error {
	if !f.loaded.CompareAndSwap(false, true) {
		return errFileLoaded
	}
	f.path = path

	if err := f.load(); err != nil {
		return err
	}
	if f.liveUpdate.isWatched() {
		f.events = make(chan fsnotify.Event, 2)
		f.done = make(chan struct{})
		f.watch()
	}
	return nil
}

func (f *File[T, L]) Example() string {
	return "config-file"
}

func (f *File[T, L]) statefulOrImpure() {}

// Get returns the decoded value, nil before the first successful load.
func (f *File[T, L]) Get() *T {
	return f.value.Load()
}

// Path returns the file name given on the command line.
func (f *File[T, L]) Path() string {
	return f.path
}

// UpdateEvents delivers one event per reload. Events are dropped while the
// channel is full.
func (f *File[T, L]) UpdateEvents() <-chan fsnotify.Event {
	return f.events
}

// Close stops watching the file.
func (f *File[T, L]) Close() {
	if f.done == nil {
		return
	}
	f.closeOnce.Do(func() { close(f.done) })
}

func (f *File[T, L]) load() error {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	var value T
	if raw, ok := any(&value).(*[]byte); ok {
		*raw = content
	} else if value, err = decodeByOrder[T](content, decodersFor(f.path)); err != nil {
		return err
	}
	f.value.Store(&value)
	return nil
}

func decodersFor(path string) []decodeFn {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return []decodeFn{yaml.Unmarshal}
	case ".json":
		return []decodeFn{json.Unmarshal}
	case ".toml":
		return []decodeFn{toml.Unmarshal}
	}
	return []decodeFn{json.Unmarshal, yaml.Unmarshal, toml.Unmarshal}
}

type errList []error

func (el errList) Error() string {
	ss := make([]string, len(el))
	for i, e := range el {
		ss[i] = fmt.Sprintf("[%s]", e)
	}
	return strings.Join(ss, " ")
}

func decodeByOrder[T any](content []byte, order []decodeFn) (T, error) {
	var el errList
	for _, decode := range order {
		var t T
		if err := decode(content, &t); err != nil {
			el = append(el, err)
			continue
		}
		return t, nil
	}
	var zero T
	return zero, el
}

// watch follows the directory of the file, which also catches editors
// saving by rename and symlink swaps of mounted config maps.
func (f *File[T, L]) watch() {
	file := filepath.Clean(f.path)
	dir, _ := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	realFile, _ := filepath.EvalSymlinks(f.path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("gclp: failed to create watcher for %s: %s", f.path, err)
		return
	}
	if err := watcher.Add(dir); err != nil {
		log.Printf("gclp: failed to watch %s: %s", dir, err)
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-f.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				currentFile, _ := filepath.EvalSymlinks(f.path)
				changed := filepath.Clean(event.Name) == file &&
					(event.Has(fsnotify.Write) || event.Has(fsnotify.Create))
				swapped := currentFile != "" && currentFile != realFile
				switch {
				case changed || swapped:
					realFile = currentFile
					if err := f.load(); err != nil {
						log.Printf("gclp: reload %s: %s", f.path, err)
					}
					select {
					case f.events <- event:
					default:
					}
				case filepath.Clean(event.Name) == file && event.Has(fsnotify.Remove):
					return
				}
			case err, ok := <-watcher.Errors:
				if ok {
					log.Printf("gclp: watch %s: %s", f.path, err)
				}
				return
			}
		}
	}()
}
