package zone53

import "fmt"

// MaxBatchSize is the largest change count Route53 accepts per call.
const MaxBatchSize = 98

type NoMatchingRecordsError struct {
	Type string
}

func (e *NoMatchingRecordsError) Error() string {
	return fmt.Sprintf("no %s records found", e.Type)
}

// BuildChanges maps record groups one to one onto upsert changes, keeping
// group order and value order. Zero groups means the requested type matched
// nothing, which must not reach the provider as an empty batch.
func BuildChanges(groups []RecordGroup, recordType string) ([]Change, error) {
	if len(groups) == 0 {
		return nil, &NoMatchingRecordsError{Type: recordType}
	}
	changes := make([]Change, 0, len(groups))
	for _, g := range groups {
		changes = append(changes, Change{
			Action: ActionUpsert,
			Name:   g.Name,
			Type:   recordType,
			TTL:    g.TTL,
			Values: g.Values,
		})
	}
	return changes, nil
}

// Partition splits changes into contiguous batches of at most maxSize,
// keeping order within and across batches. Callers pass a non-empty list,
// BuildChanges never produces an empty one.
func Partition(changes []Change, maxSize int) []Batch {
	batches := make([]Batch, 0, (len(changes)+maxSize-1)/maxSize)
	for len(changes) > maxSize {
		batches = append(batches, Batch(changes[:maxSize]))
		changes = changes[maxSize:]
	}
	if len(changes) > 0 {
		batches = append(batches, Batch(changes))
	}
	return batches
}
