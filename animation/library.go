package animation

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/stride-anim/stride/serror"
	"github.com/stride-anim/stride/worker"
)

// Library holds the canonical keyframe poses, keyed by PoseID. It is built
// once at startup and read-mostly afterwards.
type Library struct {
	mu    sync.RWMutex
	poses map[PoseID]*Pose
}

// NewLibrary creates an empty pose library.
func NewLibrary() *Library {
	return &Library{poses: make(map[PoseID]*Pose)}
}

// Add registers a pose under the given ID, replacing any previous pose.
func (l *Library) Add(id PoseID, pose *Pose) {
	l.mu.Lock()
	l.poses[id] = pose
	l.mu.Unlock()
}

// Pose returns the pose registered under the given ID.
func (l *Library) Pose(id PoseID) (*Pose, bool) {
	l.mu.RLock()
	p, ok := l.poses[id]
	l.mu.RUnlock()
	return p, ok
}

// Complete reports whether all 13 canonical poses are present.
func (l *Library) Complete() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.poses) == poseCount
}

// Missing returns the pose IDs not yet present in the library.
func (l *Library) Missing() []PoseID {
	l.mu.RLock()
	defer l.mu.RUnlock()
	all := AllPoses()
	return lo.Filter(all[:], func(id PoseID, _ int) bool {
		_, ok := l.poses[id]
		return !ok
	})
}

// LoadDir loads every canonical pose from <dir>/<name>.pose.json files. The
// files are decoded concurrently on the worker pool. Poses whose files are
// absent are skipped with a warning so a partially authored pose set still
// loads; decode failures abort the load.
func (l *Library) LoadDir(dir string, log *slog.Logger) error {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		loadErr error
	)

	for _, id := range AllPoses() {
		id := id
		path := filepath.Join(dir, id.FileName()+".pose.json")
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()

			pose, err := readPoseFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					log.Warn("pose file missing", "pose", id.String(), "path", path)
					return
				}
				mu.Lock()
				loadErr = serror.New("load pose %s: %v", id.String(), err)
				mu.Unlock()
				return
			}
			l.Add(id, pose)
			log.Debug("loaded pose", "pose", id.String(), "bones", len(pose.Bones))
		})
	}
	wg.Wait()

	if loadErr != nil {
		return loadErr
	}
	if missing := l.Missing(); len(missing) > 0 {
		log.Warn("pose library incomplete", "missing", len(missing))
	}
	return nil
}

func readPoseFile(path string) (*Pose, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pose := NewPose("")
	if err := json.Unmarshal(data, pose); err != nil {
		return nil, err
	}
	return pose, nil
}
