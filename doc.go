// Package journal implements a personal stock-trading journal: portfolios of
// buy/sell trades with written reflections, and the analytics that turn them
// into performance numbers.
//
// The analytics core is a pure function pipeline over immutable inputs: raw
// trades are normalized per symbol, matched FIFO into realized fragments and
// open lots, then reduced into realized/unrealized P&L, valuation and
// performance metrics. Every stage is deterministic and side-effect free, so
// recomputation on a fresh data snapshot is the only update mechanism.
//
// Persistence is a local JSONL book file per portfolio; quote providers and
// the live price feed belong to the data layer around the core.
package journal
