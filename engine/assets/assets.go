package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/geogen/engine/assets/loaders"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

var (
	ErrClosed       = errors.New("asset manager already closed")
	ErrUnknownAsset = errors.New("no loader registered for asset")
)

type AssetInfo struct {
	Path       string
	LastLoaded time.Time
	Watched    bool
}

/**
 * @brief Loads catalogues and, once Watch is called, reports every write to a
 * watched catalogue on Changes. Writes that arrive while a change is pending
 * are coalesced into it.
 */
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[string]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changes  chan string
	errors   chan error
	wg       sync.WaitGroup
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[string]Loader),
		fsnotify: fsWatch,
		changes:  make(chan string, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(".toml", &loaders.CatalogueLoader{})

	am.wg.Add(1)
	go am.start()

	return am, nil
}

// Register loaders for each file extension
func (am *AssetManager) registerLoader(ext string, loader Loader) {
	am.loaders[ext] = loader
}

// LoadCatalogue reads the catalogue at path with the loader for its extension.
func (am *AssetManager) LoadCatalogue(path string) (*metadata.Catalogue, error) {
	loader, ok := am.loaders[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, path)
	}

	c, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	key := assetKey(path)
	info := am.assets[key]
	info.Path = path
	info.LastLoaded = time.Now()
	am.assets[key] = info
	am.mutex.Unlock()
	return c, nil
}

// Asset reports when the file at path was last loaded.
func (am *AssetManager) Asset(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[assetKey(path)]
	return info, ok
}

// assetKey indexes assets by absolute path, which is how the watcher names them.
func assetKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

/**
 * @brief Starts watching the file at path. The parent directory is watched
 * so that editors which replace the file on save are still followed.
 */
func (am *AssetManager) Watch(path string) error {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return ErrClosed
	}

	key := assetKey(path)
	if err := am.fsnotify.Add(filepath.Dir(key)); err != nil {
		return err
	}
	info := am.assets[key]
	info.Path = path
	info.Watched = true
	am.assets[key] = info
	core.LogInfo("watching %s for changes", path)
	return nil
}

// Changes delivers the path of a watched file after it has been written.
func (am *AssetManager) Changes() <-chan string {
	return am.changes
}

// Errors delivers errors reported by the file watcher.
func (am *AssetManager) Errors() <-chan error {
	return am.errors
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)
			select {
			case am.errors <- err:
			default:
			}

		case <-am.done:
			return
		}
	}
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(name string) {
	am.mutex.RLock()
	info := am.assets[assetKey(name)]
	am.mutex.RUnlock()
	if !info.Watched {
		return
	}

	core.LogDebug("%s changed", info.Path)
	select {
	case am.changes <- info.Path:
	default:
		// A change is already pending.
	}
}

func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	close(am.done)
	am.mutex.Unlock()

	am.wg.Wait()
	return am.fsnotify.Close()
}
