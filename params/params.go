package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const PARAMS_DIR_ENV = "COLPREV_PARAMS_DIR"

var ParamsPath = defaultParamsPath()

// Params
const (
	COLLISION_PREVENTION_SETTINGS = "CollisionPreventionSettings"
)

func defaultParamsPath() string {
	if dir := os.Getenv(PARAMS_DIR_ENV); dir != "" {
		return dir
	}
	return "/data/params/d"
}

// SetParamsPath points the store at another directory, mostly for tests and
// the --params-dir flag.
func SetParamsPath(dir string) {
	ParamsPath = dir
}

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func GetParams() ([]string, error) {
	files, err := os.ReadDir(ParamsPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	paramFiles := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			paramFiles = append(paramFiles, name)
		}
	}
	sort.Strings(paramFiles)

	return paramFiles, nil
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(name string) ([]byte, error) {
	data, err := os.ReadFile(ParamPath(name))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read param %s", name)
	}
	return data, nil
}

// lockParams takes the lock file that sits next to the params directory. The
// returned func releases it.
func lockParams(dir string) (func(), error) {
	lockPath := filepath.Join(filepath.Dir(dir), ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			break
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		time.Sleep(1 * time.Millisecond)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock params directory", "error", err)
		}
		if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
			slog.Error("could not remove params lock file", "error", err)
		}
	}, nil
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}
	return nil
}

func PutParam(name string, data []byte) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp_value_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	unlock, err := lockParams(dir)
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}

func RemoveParam(name string) error {
	path := ParamPath(name)
	dir := filepath.Dir(path)

	unlock, err := lockParams(dir)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not remove param")
	}

	return syncDir(dir)
}
