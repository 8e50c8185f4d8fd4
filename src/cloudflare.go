package zone53

import (
	"context"
	"log"

	"github.com/cloudflare/cloudflare-go"
)

type CloudflareProvider struct {
	client *cloudflare.API
}

// Submit emulates the upsert per change, Cloudflare has no batch change
// call. Existing records for the name and type go away first, then one
// record per value is created.
func (s *CloudflareProvider) Submit(ctx context.Context, zoneID string, batch Batch) error {
	for _, c := range batch {
		name := defqdn(c.Name)
		records, err := s.client.DNSRecords(zoneID, cloudflare.DNSRecord{Name: name, Type: c.Type})
		if err != nil {
			return err
		}
		for _, v := range records {
			if err := s.client.DeleteDNSRecord(zoneID, v.ID); err != nil {
				return err
			}
		}
		for _, value := range c.Values {
			_, err := s.client.CreateDNSRecord(zoneID, cloudflare.DNSRecord{
				ZoneID:  zoneID,
				Name:    name,
				Type:    c.Type,
				Content: value,
				TTL:     int(c.TTL),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func NewCloudflareProvider(info map[string]string) Submitter {
	email, ok := info["Email"]
	if !ok {
		log.Fatal("Cloudflare email not set.")
	}
	key, ok := info["Key"]
	if !ok {
		log.Fatal("Cloudflare key not set.")
	}
	client, err := cloudflare.New(key, email)
	if err != nil {
		log.Fatal(err.Error())
	}
	return &CloudflareProvider{client}
}
