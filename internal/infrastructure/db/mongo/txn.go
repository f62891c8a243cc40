package mongo

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor implements ports.Transactor. On a standalone server, where
// multi-document transactions are unavailable, fn runs without one.
type Transactor struct {
	client *mongo.Client
	log    zerolog.Logger
}

func NewTransactor(client *mongo.Client, log zerolog.Logger) *Transactor {
	return &Transactor{client: client, log: log}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		// The first write inside the transaction was rejected, so nothing ran.
		t.log.Debug().Err(err).Msg("transactions unsupported, running without one")
		return fn(ctx)
	}
	return err
}

// notSupportedCodes are server error codes meaning "no transactions here":
// IllegalOperation (20), InvalidOptions (51), OperationNotSupportedInTransaction (263).
var notSupportedCodes = map[int32]struct{}{20: {}, 51: {}, 263: {}}

// IsNotSupported reports whether err says the deployment cannot run
// transactions (for example a standalone mongod).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		if _, ok := notSupportedCodes[ce.Code]; ok {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	has := func(s string) bool { return strings.Contains(msg, s) }
	switch {
	case has("transaction") && has("replica set"):
		return true
	case has("transaction") && has("session"):
		return true
	case has("session") && has("not supported"):
		return true
	case has("illegal operation"):
		return true
	}
	return false
}
