package cli

import (
	"encoding/base64"
	"fmt"

	"github.com/aretw0/fabricmock/internal/config"
	"github.com/aretw0/fabricmock/pkg/persistence/middleware"
	"github.com/aretw0/fabricmock/pkg/ports"
)

// WrapStore applies the redaction and encryption settings of rc to store.
func WrapStore(store ports.SnapshotStore, rc config.RedisConfig) (ports.SnapshotStore, error) {
	var mws []middleware.Middleware
	if len(rc.Redact) > 0 {
		mws = append(mws, middleware.NewPIIMiddleware(rc.Redact))
	}
	if rc.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(rc.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	return middleware.Chain(store, mws...), nil
}
