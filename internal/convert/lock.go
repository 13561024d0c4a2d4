// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is the name of the lock held in an output directory during a
// batch run.
const LockFile = ".texclean.lock"

// LockOutput takes an exclusive lock on dir so two batch runs cannot write
// the same outputs. The returned function releases it.
func LockOutput(dir string) (func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	lock := flock.New(filepath.Join(dir, LockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output directory %s is locked by another run", dir)
	}
	return lock.Unlock, nil
}
