package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/pkg/postgres"
)

// fakeTx satisfies pgx.Tx through embedding; only the methods WithTransaction
// touches are implemented.
type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}

	var got postgres.Querier
	err := postgres.WithTransaction(context.Background(), db, func(q postgres.Querier) error {
		got = q
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
	assert.Same(t, tx, got, "fn must receive the transaction it runs in")
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	boom := errors.New("boom")

	err := postgres.WithTransaction(context.Background(), db, func(q postgres.Querier) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestWithTransaction_BeginAndCommitFailures(t *testing.T) {
	err := postgres.WithTransaction(context.Background(),
		&fakeBeginner{beginErr: errors.New("pool closed")},
		func(q postgres.Querier) error { return nil })
	require.ErrorContains(t, err, "begin transaction")

	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	err = postgres.WithTransaction(context.Background(), &fakeBeginner{tx: tx},
		func(q postgres.Querier) error { return nil })
	require.ErrorContains(t, err, "commit transaction")
}
