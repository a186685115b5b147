// Package kalshipnl reconciles realized profit and loss for a Kalshi
// trading account. It is designed to be local-first and auditable: fills
// and settlements are synced into a local database, and every reported
// number can be traced back to individual lot closings.
//
// The core functionalities include:
//   - FIFO Lot Accounting: Every buy opens a lot; every sell, real or
//     settlement-derived, consumes the oldest lots first and records one
//     ClosedPnLEvent per consumed lot portion.
//   - Settlement Synthesis: Markets held to settlement are closed by
//     fabricating a sell at the settlement price (100¢/0¢ for binary
//     outcomes, the settlement value for scalar markets), so that trading
//     exits and settlements flow through a single code path.
//   - Fee Reconciliation: Trading fees, reported by the exchange only on
//     settlement records, are subtracted once per ticker after FIFO
//     closing completes.
//   - Reporting: Per-ticker and portfolio-wide realized totals, win/loss
//     counts, and half-up-rounded average win and loss.
//
// This package serves as the foundational logic for the `kpr` command-line
// tool. The computation is pure: given identical fill and settlement
// inputs it produces bit-identical reports.
package kalshipnl
