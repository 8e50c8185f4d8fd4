package zone53

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	dns "google.golang.org/api/dns/v1"
)

type GoogleProvider struct {
	project string
	client  *dns.Service
}

func (s *GoogleProvider) findDeleteRecords(zoneName string, batch Batch) ([]*dns.ResourceRecordSet, error) {
	recs, err := s.client.ResourceRecordSets.List(s.project, zoneName).Do()
	if err != nil {
		return nil, err
	}
	deleteRecords := make([]*dns.ResourceRecordSet, 0)
	if recs.Rrsets == nil {
		return deleteRecords, nil
	}
	for _, v := range recs.Rrsets {
		for _, c := range batch {
			if v.Name == c.Name && v.Type == c.Type {
				deleteRecords = append(deleteRecords, v)
				break
			}
		}
	}
	return deleteRecords, nil
}

// Submit sends the whole batch as one Cloud DNS change. Cloud DNS has no
// upsert action, so any existing record set for a changed name and type is
// listed in Deletions.
func (s *GoogleProvider) Submit(ctx context.Context, zoneID string, batch Batch) error {
	additions := make([]*dns.ResourceRecordSet, 0, len(batch))
	for _, c := range batch {
		additions = append(additions, &dns.ResourceRecordSet{
			Name:    c.Name,
			Type:    c.Type,
			Ttl:     int64(c.TTL),
			Rrdatas: c.Values,
		})
	}
	changes := &dns.Change{Additions: additions}
	deleteRecords, err := s.findDeleteRecords(zoneID, batch)
	if err != nil {
		return err
	}
	if len(deleteRecords) > 0 {
		changes.Deletions = deleteRecords
	}
	chg, err := s.client.Changes.Create(s.project, zoneID, changes).Context(ctx).Do()
	if err != nil {
		return err
	}
	for chg.Status == "pending" {
		time.Sleep(1 * time.Second)
		chg, err = s.client.Changes.Get(s.project, zoneID, chg.Id).Context(ctx).Do()
		if err != nil {
			return err
		}
	}
	return nil
}

func NewGoogleProvider(info map[string]string) Submitter {
	project, ok := info["Project"]
	if !ok || project == "" {
		log.Fatal("Google Cloud project name missing")
	}
	saFile, ok := info["SaFile"]
	if !ok || saFile == "" {
		log.Fatal("Google Cloud Service Account file missing")
	}
	dat, err := os.ReadFile(saFile)
	if err != nil {
		log.Fatalf("Unable to read Service Account file: %v", err)
	}
	conf, err := google.JWTConfigFromJSON(dat, dns.NdevClouddnsReadwriteScope)
	if err != nil {
		log.Fatalf("Unable to acquire config: %v", err)
	}
	client := conf.Client(context.Background())
	svc, err := dns.New(client)
	if err != nil {
		log.Fatalf("Unable to create Google Cloud DNS service: %v", err)
	}
	return &GoogleProvider{
		project: project,
		client:  svc,
	}
}
