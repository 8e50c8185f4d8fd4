package zone53

import (
	"context"
	"log"

	"github.com/huaweicloud/huaweicloud-sdk-go-v3/core/auth/basic"
	dns "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/dns/v2"
	"github.com/huaweicloud/huaweicloud-sdk-go-v3/services/dns/v2/model"
	region "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/dns/v2/region"
)

type HuaweiProvider struct {
	Region string
	AK     string
	SK     string
	client *dns.DnsClient
}

// Submit emulates the upsert per change, existing record sets matching
// name and type are deleted before the new set is created.
func (s *HuaweiProvider) Submit(ctx context.Context, zoneID string, batch Batch) error {
	for _, c := range batch {
		name := c.Name
		records, err := s.client.ListRecordSetsByZone(&model.ListRecordSetsByZoneRequest{
			ZoneId: zoneID,
			Name:   &name,
		})
		if err != nil {
			return err
		}
		for _, v := range *records.Recordsets {
			if *v.Name == c.Name && *v.Type == c.Type {
				_, err := s.client.DeleteRecordSet(&model.DeleteRecordSetRequest{
					ZoneId:      *v.ZoneId,
					RecordsetId: *v.Id,
				})
				if err != nil {
					return err
				}
			}
		}
		ttl := int32(c.TTL)
		_, err = s.client.CreateRecordSet(&model.CreateRecordSetRequest{
			ZoneId: zoneID,
			Body: &model.CreateRecordSetReq{
				Name:    c.Name,
				Type:    c.Type,
				Ttl:     &ttl,
				Records: c.Values,
			}})
		if err != nil {
			return err
		}
	}
	return nil
}

func NewHuaweiProvider(info map[string]string) Submitter {
	provider := HuaweiProvider{}
	if v, ok := info["Endpoint"]; ok {
		provider.Region = v
	} else {
		provider.Region = "cn-north-4"
	}
	if v, ok := info["AK"]; ok {
		provider.AK = v
	} else {
		log.Fatal("Huawei: missing AK")
	}
	if v, ok := info["SK"]; ok {
		provider.SK = v
	} else {
		log.Fatal("Huawei: missing SK")
	}
	auth := basic.NewCredentialsBuilder().
		WithAk(provider.AK).WithSk(provider.SK).Build()
	client := dns.NewDnsClient(
		dns.DnsClientBuilder().
			WithRegion(region.ValueOf(provider.Region)).
			WithCredential(auth).Build())
	provider.client = client
	return &provider
}
