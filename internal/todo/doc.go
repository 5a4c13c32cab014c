// Package todo defines tasks, priorities, and filters, and encodes task
// collections for the key-value store.
//
// A task collection is stored as a JSON array:
//
//	[
//	  {
//	    "id": 1718000000000,
//	    "text": "Buy milk",
//	    "completed": false,
//	    "priority": "medium",
//	    "date": "6/10/2024"
//	  }
//	]
//
// # Validation
//
// Decode validates the raw value against an embedded JSON Schema
// (draft 2020-12) before converting it. Any schema violation rejects the
// whole collection; callers treat a rejected collection as absent.
//
// # Priority Values
//
//   - "high"
//   - "medium" (default for new tasks and for stored tasks without a priority)
//   - "low"
//
// # Filter Modes
//
//   - "all": every task
//   - "active": tasks not completed
//   - "completed": tasks completed
package todo
