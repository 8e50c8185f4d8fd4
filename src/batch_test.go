package zone53

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChanges(t *testing.T) {
	groups := []RecordGroup{
		{Name: "www.example.com.", TTL: 300, Values: []string{"10.0.0.1", "10.0.0.2"}},
		{Name: "mail.example.com.", TTL: 600, Values: []string{"10.0.0.3"}},
	}

	changes, err := BuildChanges(groups, "A")
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, Change{
		Action: ActionUpsert,
		Name:   "www.example.com.",
		Type:   "A",
		TTL:    300,
		Values: []string{"10.0.0.1", "10.0.0.2"},
	}, changes[0])
	assert.Equal(t, "mail.example.com.", changes[1].Name)
}

func TestBuildChangesNoGroups(t *testing.T) {
	_, err := BuildChanges(nil, "NS")
	require.Error(t, err)
	var noMatch *NoMatchingRecordsError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "NS", noMatch.Type)
	assert.Contains(t, err.Error(), "NS")
}

func makeChanges(n int) []Change {
	changes := make([]Change, 0, n)
	for i := 0; i < n; i++ {
		changes = append(changes, Change{
			Action: ActionUpsert,
			Name:   fmt.Sprintf("host%d.example.com.", i),
			Type:   "A",
			TTL:    300,
			Values: []string{"10.0.0.1"},
		})
	}
	return changes
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantSizes []int
	}{
		{name: "single", total: 1, wantSizes: []int{1}},
		{name: "under-limit", total: 98, wantSizes: []int{98}},
		{name: "just-over", total: 99, wantSizes: []int{98, 1}},
		{name: "three-batches", total: 250, wantSizes: []int{98, 98, 54}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := makeChanges(tt.total)
			batches := Partition(changes, MaxBatchSize)
			require.Len(t, batches, len(tt.wantSizes))
			flat := make([]Change, 0, tt.total)
			for i, batch := range batches {
				assert.Len(t, batch, tt.wantSizes[i])
				flat = append(flat, batch...)
			}
			assert.Equal(t, changes, flat)
		})
	}
}

func TestPartitionEmpty(t *testing.T) {
	assert.Empty(t, Partition(nil, MaxBatchSize))
}
