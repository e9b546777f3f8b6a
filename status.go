package beefdesk

// GoodsStatus is the timeline position of a lot relative to a reference day.
type GoodsStatus int

const (
	// StatusFuture means the goods have not left the origin port yet.
	StatusFuture GoodsStatus = iota
	// StatusSemi means the goods are on the water, shipped but not arrived.
	StatusSemi
	// StatusSpot means the goods sit in a domestic warehouse.
	StatusSpot
	// StatusPending means a warehouse entry is booked at a later date.
	StatusPending
)

func (s GoodsStatus) String() string {
	switch s {
	case StatusFuture:
		return "future"
	case StatusSemi:
		return "in-transit"
	case StatusSpot:
		return "spot"
	case StatusPending:
		return "pending-entry"
	default:
		return "unknown"
	}
}

// Classify derives the status of a lot on a given day from its shipping,
// arrival and warehouse entry dates. Rules are checked in order:
//
//   - no shipping and no arrival date: a spot record. If it has a future
//     entry date it is pending, otherwise it is in store.
//   - entered the warehouse on or before the day: in store, whatever the
//     transit dates say.
//   - shipping strictly after the day: not departed yet.
//   - shipped on or before the day and not yet arrived: on the water.
//   - anything degenerate left over (arrival before shipping, arrival
//     passed without an entry date): treated as on the water.
//
// Boundary days are inclusive towards the later state: on the shipping day
// the goods are on the water, on the entry day they are in store.
func (l Lot) Classify(on Date) GoodsStatus {
	if l.ShippingDate.IsZero() && l.ETADate.IsZero() {
		if !l.EntryDate.IsZero() && on.Before(l.EntryDate) {
			return StatusPending
		}
		return StatusSpot
	}
	if !l.EntryDate.IsZero() && !on.Before(l.EntryDate) {
		return StatusSpot
	}
	if !l.ShippingDate.IsZero() && l.ShippingDate.After(on) {
		return StatusFuture
	}
	return StatusSemi
}

// StorageDays counts the days the lot has spent in the warehouse as of the
// given day, rounding any partial day up. A lot without an entry date, or
// entering in the future, has spent zero days.
func (l Lot) StorageDays(on Date) int {
	if l.EntryDate.IsZero() || on.Before(l.EntryDate) {
		return 0
	}
	return l.EntryDate.DaysUntil(on)
}
