package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
)

// Middleware describes a Store middleware.
type Middleware func(Store) Store

// LoggingMiddleware takes a logger as a dependency
// and returns a Store Middleware.
func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Store) Store {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Store
}

func (mw loggingMiddleware) Create(ctx context.Context, todo Todo) (err error) {
	defer func() {
		mw.logger.Log("method", "Create", "id", todo.ID, "err", err)
	}()
	return mw.next.Create(ctx, todo)
}

func (mw loggingMiddleware) List(ctx context.Context, offset, limit int64) (todos []Todo, err error) {
	defer func() {
		mw.logger.Log("method", "List", "offset", offset, "limit", limit, "n", len(todos), "err", err)
	}()
	return mw.next.List(ctx, offset, limit)
}

func (mw loggingMiddleware) Update(ctx context.Context, input UpdateInput) (err error) {
	defer func() {
		mw.logger.Log("method", "Update", "id", input.ID, "err", err)
	}()
	return mw.next.Update(ctx, input)
}

func (mw loggingMiddleware) Delete(ctx context.Context, id string) (err error) {
	defer func() {
		mw.logger.Log("method", "Delete", "id", id, "err", err)
	}()
	return mw.next.Delete(ctx, id)
}

// InstrumentingMiddleware records the duration of every store call,
// labelled by method and whether it failed.
func InstrumentingMiddleware(duration metrics.Histogram) Middleware {
	return func(next Store) Store {
		return instrumentingMiddleware{duration, next}
	}
}

type instrumentingMiddleware struct {
	duration metrics.Histogram
	next     Store
}

func (mw instrumentingMiddleware) observe(method string, begin time.Time, err error) {
	lvs := []string{"method", method, "error", fmt.Sprint(err != nil)}
	mw.duration.With(lvs...).Observe(time.Since(begin).Seconds())
}

func (mw instrumentingMiddleware) Create(ctx context.Context, todo Todo) (err error) {
	defer func(begin time.Time) { mw.observe("Create", begin, err) }(time.Now())
	return mw.next.Create(ctx, todo)
}

func (mw instrumentingMiddleware) List(ctx context.Context, offset, limit int64) (todos []Todo, err error) {
	defer func(begin time.Time) { mw.observe("List", begin, err) }(time.Now())
	return mw.next.List(ctx, offset, limit)
}

func (mw instrumentingMiddleware) Update(ctx context.Context, input UpdateInput) (err error) {
	defer func(begin time.Time) { mw.observe("Update", begin, err) }(time.Now())
	return mw.next.Update(ctx, input)
}

func (mw instrumentingMiddleware) Delete(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) { mw.observe("Delete", begin, err) }(time.Now())
	return mw.next.Delete(ctx, id)
}
