package zone53

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

type Route53Provider struct {
	client  *route53.Client
	comment string
}

func (s *Route53Provider) Submit(ctx context.Context, zoneID string, batch Batch) error {
	changes := make([]types.Change, 0, len(batch))
	for _, c := range batch {
		records := make([]types.ResourceRecord, 0, len(c.Values))
		for _, v := range c.Values {
			records = append(records, types.ResourceRecord{Value: aws.String(v)})
		}
		changes = append(changes, types.Change{
			Action: types.ChangeActionUpsert,
			ResourceRecordSet: &types.ResourceRecordSet{
				Name:            aws.String(c.Name),
				Type:            types.RRType(c.Type),
				TTL:             aws.Int64(int64(c.TTL)),
				ResourceRecords: records,
			},
		})
	}
	_, err := s.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Comment: aws.String(s.comment),
			Changes: changes,
		},
	})
	return err
}

func NewRoute53Provider(info map[string]string, comment string) Submitter {
	opts := make([]func(*awsconfig.LoadOptions) error, 0)
	if v, ok := info["Region"]; ok {
		opts = append(opts, awsconfig.WithRegion(v))
	}
	if v, ok := info["Profile"]; ok {
		opts = append(opts, awsconfig.WithSharedConfigProfile(v))
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Route53: load AWS config failed, %s", err)
	}
	return &Route53Provider{
		client:  route53.NewFromConfig(cfg),
		comment: comment,
	}
}
