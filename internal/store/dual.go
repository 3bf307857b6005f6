package store

import (
	"context"
	"errors"

	"github.com/goto/salt/log"
)

// DualWriter keeps a remote backend as the source of truth with a local
// mirror. Saves go to both and succeed only when both succeed; a partial
// write is possible and is not reconciled. This is belt and suspenders,
// not a distributed transaction.
type DualWriter struct {
	logger log.Logger
	remote Backend
	local  Backend
}

func NewDualWriter(logger log.Logger, remote, local Backend) *DualWriter {
	return &DualWriter{
		logger: logger,
		remote: remote,
		local:  local,
	}
}

// Load reads from the remote backend, falling back to the local mirror
// when the remote is unreachable.
func (d *DualWriter) Load(ctx context.Context, name string) ([]byte, bool, error) {
	data, ok, err := d.remote.Load(ctx, name)
	if err == nil {
		return data, ok, nil
	}

	d.logger.Warn("remote load failed, falling back to local mirror", "collection", name, "err", err)
	return d.local.Load(ctx, name)
}

func (d *DualWriter) Save(ctx context.Context, name string, data []byte) error {
	remoteErr := d.remote.Save(ctx, name, data)
	localErr := d.local.Save(ctx, name, data)
	return errors.Join(remoteErr, localErr)
}
