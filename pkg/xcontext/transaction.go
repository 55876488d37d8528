package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type txHolder struct {
	tx   *gorm.DB
	done bool
}

// WithDBTransaction begins a database transaction on the connection stored in
// ctx. Until WithCommitDBTransaction or WithRollbackDBTransaction is called,
// DB(ctx) returns the transaction instead of the root connection.
//
// The usual pattern is:
//
//	ctx = xcontext.WithDBTransaction(ctx)
//	defer xcontext.WithRollbackDBTransaction(ctx)
//	...
//	xcontext.WithCommitDBTransaction(ctx)
func WithDBTransaction(ctx context.Context) context.Context {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok || db == nil {
		return ctx
	}

	return context.WithValue(ctx, txKey{}, &txHolder{tx: db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if !ok || holder.done {
		return ctx
	}

	holder.tx.Commit()
	holder.done = true
	holder.tx = nil
	return ctx
}

// WithRollbackDBTransaction rolls back the current transaction. It is a no-op
// after a commit, so it is safe to defer unconditionally.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	holder, ok := ctx.Value(txKey{}).(*txHolder)
	if !ok || holder.done {
		return ctx
	}

	holder.tx.Rollback()
	holder.done = true
	holder.tx = nil
	return ctx
}
