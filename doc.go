// Package beefdesk provides the core types and calculations for running an
// imported-beef trading desk. It is designed to be local-first and auditable:
// the whole book lives in a human-readable file, and every figure on a report
// can be recomputed from it.
//
// The core functionalities include:
//   - Inventory Costing: Deriving the landed cost per kilogram of each lot
//     from its sourcing terms, either a domestic spot purchase or a financed
//     futures import priced in USD per ton.
//   - Container Aggregation: Folding detail lines into container totals, with
//     a whole-container record taking precedence over its lines and payment
//     floors applied container by container.
//   - Parameter Sets: Named financing configurations (interest rate, capital
//     occupancy, storage tariff, customs and VAT factors) that lots reference
//     and editors can swap without touching the inventory.
//   - Market Data: The import price index with its moving averages, the
//     factor watchlist and the position book the morning report is built on.
//   - Scenario Simulation: Projecting the index forward under discrete market
//     events and stressing the position book against them.
//   - Data Persistence: Encoding and decoding the desk to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `bfd` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package beefdesk
