package zone53

import "context"

const ActionUpsert = "UPSERT"

// RawRecord is one record instance as read from the source zone. Name is
// zone-relative, with "@" marking the zone apex.
type RawRecord struct {
	Name  string
	Class uint16
	Type  uint16
	TTL   uint32
	Value string
}

// RecordGroup collects every value sharing one canonical name. The TTL is
// the one seen on the first record for that name.
type RecordGroup struct {
	Name   string
	TTL    uint32
	Values []string
}

// Change is one upsert of a full record set.
type Change struct {
	Action string
	Name   string
	Type   string
	TTL    uint32
	Values []string
}

type Batch []Change

// ZoneSource produces the full, already-materialized record list of a zone.
type ZoneSource interface {
	Fetch() ([]RawRecord, error)
}

// Submitter applies one batch of changes to a hosted zone. Implementations
// own their network timeouts; a returned error aborts the remaining batches.
type Submitter interface {
	Submit(ctx context.Context, zoneID string, batch Batch) error
}
