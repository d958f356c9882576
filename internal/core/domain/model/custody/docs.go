// Package custody provides the append-only driver-order ledger.
//
// Every claim event on an order produces a Record: accepting an order appends
// an "accepted" record, completing it appends a "completed" record. Transfers
// rewrite the active "accepted" record in place, moving custody to the new
// driver and stamping the outgoing driver into the previous-driver snapshot.
//
// For a given order, the "accepted" record not yet superseded by a "completed"
// record identifies the current custodian. Records are never deleted, so the
// full custody history of an order is always reconstructible from the ledger
// even though each record keeps only a single-hop previous-driver snapshot.
package custody
