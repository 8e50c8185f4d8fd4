package zone53

import (
	"context"
	"testing"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records []RawRecord
	err     error
	calls   int
}

func (s *fakeSource) Fetch() ([]RawRecord, error) {
	s.calls++
	return s.records, s.err
}

type fakeSubmitter struct {
	zoneIDs []string
	batches []Batch
	failAt  int // 1-based batch index to fail on, 0 = never
}

func (s *fakeSubmitter) Submit(ctx context.Context, zoneID string, batch Batch) error {
	s.zoneIDs = append(s.zoneIDs, zoneID)
	s.batches = append(s.batches, batch)
	if s.failAt > 0 && len(s.batches) == s.failAt {
		return errors.New("provider rejected the batch")
	}
	return nil
}

func testCli(recordType string) *Cli {
	return &Cli{
		Domain:     "example.com",
		RecordType: recordType,
		ZoneID:     "Z1234567891011",
	}
}

func TestRunSingleBatch(t *testing.T) {
	source := &fakeSource{records: []RawRecord{
		raw("@", dns.TypeNS, 3600, "ns1.example."),
		raw("www", dns.TypeA, 300, "10.0.0.1"),
		raw("www", dns.TypeA, 300, "10.0.0.2"),
	}}
	submitter := &fakeSubmitter{}

	err := testCli("A").Run(context.Background(), source, submitter)
	require.NoError(t, err)
	require.Len(t, submitter.batches, 1)
	assert.Equal(t, []string{"Z1234567891011"}, submitter.zoneIDs)
	require.Len(t, submitter.batches[0], 1)
	assert.Equal(t, Change{
		Action: ActionUpsert,
		Name:   "www.example.com.",
		Type:   "A",
		TTL:    300,
		Values: []string{"10.0.0.1", "10.0.0.2"},
	}, submitter.batches[0][0])
}

func TestRunBatchesInOrder(t *testing.T) {
	source := &fakeSource{}
	for i := 0; i < 250; i++ {
		name := "host" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676))
		source.records = append(source.records, raw(name, dns.TypeA, 300, "10.0.0.1"))
	}
	submitter := &fakeSubmitter{}

	err := testCli("A").Run(context.Background(), source, submitter)
	require.NoError(t, err)
	require.Len(t, submitter.batches, 3)
	assert.Len(t, submitter.batches[0], 98)
	assert.Len(t, submitter.batches[1], 98)
	assert.Len(t, submitter.batches[2], 54)
	assert.Equal(t, "hostaaa.example.com.", submitter.batches[0][0].Name)
}

func TestRunAbortsOnSubmitFailure(t *testing.T) {
	source := &fakeSource{}
	for i := 0; i < 250; i++ {
		name := "host" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676))
		source.records = append(source.records, raw(name, dns.TypeA, 300, "10.0.0.1"))
	}
	submitter := &fakeSubmitter{failAt: 2}

	err := testCli("A").Run(context.Background(), source, submitter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit batch 2/3")
	// the third batch never went out
	assert.Len(t, submitter.batches, 2)
}

func TestRunEmptySource(t *testing.T) {
	submitter := &fakeSubmitter{}
	err := testCli("A").Run(context.Background(), &fakeSource{}, submitter)
	require.ErrorIs(t, err, ErrEmptySource)
	assert.Empty(t, submitter.batches)
}

func TestRunNoMatchingRecords(t *testing.T) {
	source := &fakeSource{records: []RawRecord{
		raw("@", dns.TypeNS, 3600, "ns1.example."),
	}}
	submitter := &fakeSubmitter{}

	err := testCli("NS").Run(context.Background(), source, submitter)
	require.Error(t, err)
	var noMatch *NoMatchingRecordsError
	require.ErrorAs(t, err, &noMatch)
	assert.Empty(t, submitter.batches)
}

func TestRunUnsupportedTypeBeforeFetch(t *testing.T) {
	source := &fakeSource{records: []RawRecord{raw("www", dns.TypeA, 300, "10.0.0.1")}}

	err := testCli("CAA").Run(context.Background(), source, &fakeSubmitter{})
	require.Error(t, err)
	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Zero(t, source.calls)
}

func TestRunIdempotent(t *testing.T) {
	records := []RawRecord{
		raw("beta", dns.TypeA, 300, "10.0.0.2"),
		raw("alpha", dns.TypeA, 120, "10.0.0.1"),
		raw("beta", dns.TypeA, 60, "10.0.0.3"),
	}
	first := &fakeSubmitter{}
	second := &fakeSubmitter{}

	require.NoError(t, testCli("A").Run(context.Background(), &fakeSource{records: records}, first))
	require.NoError(t, testCli("A").Run(context.Background(), &fakeSource{records: records}, second))
	assert.Equal(t, first.batches, second.batches)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cli     Cli
		wantErr string
	}{
		{
			name:    "missing-domain",
			cli:     Cli{File: "zone.db", ZoneID: "Z1"},
			wantErr: "-d",
		},
		{
			name:    "missing-source",
			cli:     Cli{Domain: "example.com", ZoneID: "Z1"},
			wantErr: "no zone source",
		},
		{
			name:    "both-sources",
			cli:     Cli{Domain: "example.com", File: "zone.db", Server: "1.2.3.4", ZoneID: "Z1"},
			wantErr: "choose one",
		},
		{
			name:    "missing-zone-id",
			cli:     Cli{Domain: "example.com", File: "zone.db"},
			wantErr: "-z",
		},
		{
			name: "ok-file",
			cli:  Cli{Domain: "example.com", File: "zone.db", ZoneID: "Z1"},
		},
		{
			name: "ok-axfr",
			cli:  Cli{Domain: "example.com", Server: "1.2.3.4", ZoneID: "Z1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cli.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
