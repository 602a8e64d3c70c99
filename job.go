// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job drives a Tree through a full level-wise mining run: repeated
// AddLevel/count/EndCountingPass rounds until no further level can be
// added or the configured MaxLen is reached, followed by whichever
// closed/maximal filter the tree's Target calls for. It exists so the
// AddLevel/CountTransaction/EndCountingPass protocol, which a caller could
// drive by hand, has one well-logged, cancellable, job-scoped place to
// live instead of being copied into every caller.
type Job struct {
	// ID identifies this run in logs; useful when several jobs run against
	// the same process.
	ID uuid.UUID

	Tree   *Tree
	Source TransactionSource

	log *zap.Logger
}

// NewJob creates a job wrapping tree and source. log may be nil, in which
// case a no-op logger is used.
func NewJob(tree *Tree, source TransactionSource, log *zap.Logger) *Job {
	if log == nil {
		log = zap.NewNop()
	}
	return &Job{ID: uuid.New(), Tree: tree, Source: source, log: log}
}

// Run drives the tree to completion: one counting pass over Source per
// level, until AddLevel reports no further candidates or MaxLen bounds the
// depth, then the MarkClosed/MarkMaximal pass the tree's Options.Target
// calls for. ctx is checked between transactions (for a shared-prefix
// source, once before each counting pass), so a long-running job can be
// cancelled; on cancellation Run returns the context's error and the tree
// is left in the middle of a counting pass: the newest level holds
// partial counts and the tree is not in the Counted state, so filtering
// and extraction are not available on it.
func (j *Job) Run(ctx context.Context) error {
	j.Tree.SetTransactionCount(j.Source.Len())
	log := j.log.With(zap.String("job_id", j.ID.String()))

	opts := j.Tree.opts
	for {
		added, err := j.Tree.AddLevel()
		if err != nil {
			return fmt.Errorf("freqmine: job %s: add level: %w", j.ID, err)
		}
		if !added {
			log.Info("mining converged", zap.Int("height", j.Tree.Height()))
			break
		}
		if err := j.countPass(ctx); err != nil {
			return fmt.Errorf("freqmine: job %s: counting pass: %w", j.ID, err)
		}
		j.Tree.EndCountingPass()
		log.Debug("level counted", zap.Int("height", j.Tree.Height()))

		if opts.MaxLen > 0 && j.Tree.Height()+1 >= opts.MaxLen {
			log.Info("reached configured max length", zap.Int("max_len", opts.MaxLen))
			break
		}
	}

	switch opts.Target {
	case TargetClosedSets:
		j.Tree.MarkClosed()
	case TargetMaximalSets:
		j.Tree.MarkMaximal()
	}
	return nil
}

// countPass runs one full counting round over Source, preferring a single
// CountTransactionTree call when Source exposes a shared-prefix tree.
func (j *Job) countPass(ctx context.Context) error {
	if ts, ok := j.Source.(TreeTransactionSource); ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		j.Tree.CountTransactionTree(ts.Root())
		return nil
	}

	j.Source.Reset()
	required := j.Tree.requiredTransactionLen()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		items, ok := j.Source.Next()
		if !ok {
			return nil
		}
		if len(items) < required {
			continue
		}
		j.Tree.CountTransaction(items)
	}
}
