// Package valves finds the most pressure that can be released from a
// network of valves joined by tunnels within a time budget.
//
// A Graph is parsed from the puzzle text, a PathTable caches the shortest
// route from every valve to every valve worth opening, and the searches
// pick the order in which to open valves, either alone (BestTotalYield) or
// with a helper working from the same pool of valves
// (BestTotalYieldTwoAgents).
//
// Moving through a tunnel takes one minute and opening a valve takes one
// more. An open valve releases its flow rate every remaining minute.
package valves
