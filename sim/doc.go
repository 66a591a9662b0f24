// Package sim provides the core discrete-time scheduling engine for schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process record and its liveness rule
//   - policy.go: the seven ready-list ordering policies (method ids 0-6)
//   - simulator.go: the tick loop tying admission, ordering, unit
//     assignment and remaining-time accounting together
//
// # Architecture
//
// The sim package owns all mutable simulation state; I/O glue lives in
// sub-packages:
//   - sim/workload/: arrival-record parsing and synthetic workload generation
//   - sim/trace/: per-tick output formatting and the end-of-run summary
//
// A Simulator advances one tick at a time. Each tick admits the arrivals
// due at the current clock, lets the configured Policy reorder the ready
// list in place, assigns the list prefix to the execution units, then
// decrements the remaining time of every occupant and evicts processes
// that finish. The loop halts once input is exhausted and every unit is
// idle.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Policy: order the ready list before unit assignment
//   - Source: yield the next arrival record (sim/workload implements it)
//   - TickWriter: emit one record per tick (sim/trace implements it)
package sim
