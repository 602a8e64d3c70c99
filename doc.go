// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

// Package freqmine implements the item-set prefix tree at the heart of an
// Apriori frequent-pattern miner: a level-wise breadth-first enumeration of
// frequent item sets, and the extraction of association rules, hyperedges,
// and groups from them.
//
// A [Tree] holds, level by level, every candidate k-item-set that survived
// (k-1)-subset pruning, each counted against the transaction database by
// [Tree.CountTransaction] or [Tree.CountTransactionTree]. Between counting
// passes [Tree.AddLevel] grows the tree by one level; once no level can be
// added the tree is ready for [Tree.MarkClosed]/[Tree.MarkMaximal] filtering
// and for pattern extraction via [Tree.Sets], [Tree.Rules], [Tree.Hyperedges],
// and [Tree.Groups].
//
// freqmine does not read transaction files, assign item identifiers, or
// format output — those are the caller's job. [Job] wires a [Tree] to an
// item dictionary and a transaction source and drives the level-by-level
// build loop end to end.
package freqmine
