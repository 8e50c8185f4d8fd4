package zone53

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

type Cli struct {
	Config
	Domain     string
	RecordType string
	File       string
	Server     string
	ZoneID     string
	Comment    string
	Provider   string
}

func (s *Cli) validate() error {
	if s.Domain == "" {
		return errors.New("no domain defined, use -d to define the domain to transfer")
	}
	if s.File == "" && s.Server == "" {
		return errors.New("no zone source defined, use -f for a zone file or -s for an AXFR server")
	}
	if s.File != "" && s.Server != "" {
		return errors.New("both -f and -s set, choose one zone source")
	}
	if s.ZoneID == "" {
		return errors.New("no hosted zone id provided, try again with -z")
	}
	return nil
}

func (s *Cli) source() ZoneSource {
	if s.File != "" {
		log.Printf("Importing zone from file: %s", s.File)
		return &FileSource{Path: s.File, Domain: s.Domain}
	}
	log.Printf("Making AXFR request to %s...", s.Server)
	src := &AxfrSource{Server: s.Server, Domain: s.Domain}
	if s.Config.Tsig != "" {
		alg, name, secret, err := s.Config.parseTsig()
		if err != nil {
			log.Fatalf("Parse tsig error, %s", err)
		}
		src.TsigAlg, src.TsigName, src.Tsig = alg, name, secret
	}
	return src
}

func (s *Cli) submitter() Submitter {
	info, ok := s.Config.Providers[s.Provider]
	if !ok {
		if s.Provider == "route53" {
			return NewRoute53Provider(map[string]string{}, s.Comment)
		}
		log.Fatalf("Provider %s not found in config.", s.Provider)
	}
	switch info["Type"] {
	case "Route53", "":
		return NewRoute53Provider(info, s.Comment)
	case "Cloudflare":
		return NewCloudflareProvider(info)
	case "GoogleCloud":
		return NewGoogleProvider(info)
	case "Huawei":
		return NewHuaweiProvider(info)
	default:
		log.Fatalf("Unknown provider type %s.", info["Type"])
		return nil
	}
}

// Run drives the whole reconciliation as one linear pipeline, fetch then
// aggregate then batch then submit. Batches go out strictly in partition
// order and the first submission failure aborts the rest, a re-run is safe
// because every change is an upsert.
func (s *Cli) Run(ctx context.Context, source ZoneSource, submitter Submitter) error {
	rdtype, _, err := ResolveType(s.RecordType)
	if err != nil {
		return err
	}
	log.Printf("Processing %s records for %s...", s.RecordType, s.Domain)
	records, err := source.Fetch()
	if err != nil {
		return err
	}
	log.Printf("Total records downloaded: %d", len(records))
	groups, err := Aggregate(records, s.Domain, rdtype)
	if err != nil {
		return err
	}
	changes, err := BuildChanges(groups, s.RecordType)
	if err != nil {
		return err
	}
	log.Printf("Total records processed: %d", len(changes))
	printChanges(changes)
	batches := Partition(changes, MaxBatchSize)
	for i, batch := range batches {
		if err := submitter.Submit(ctx, s.ZoneID, batch); err != nil {
			return errors.Wrapf(err, "submit batch %d/%d", i+1, len(batches))
		}
		log.Printf("Batch %d/%d submitted", i+1, len(batches))
	}
	return nil
}

func Do(version string) {
	versionFlag := flag.Bool("v", false, "Show version.")
	configPathFlag := flag.String("config", "", "Config path.")
	domainFlag := flag.String("d", "", "Domain to transfer.")
	typeFlag := flag.String("t", "A", "Record type to process.")
	fileFlag := flag.String("f", "", "Import zone from file path.")
	serverFlag := flag.String("s", "", "DNS server to send the AXFR request to.")
	zoneFlag := flag.String("z", "", "Hosted zone to submit records to. This is required.")
	commentFlag := flag.String("c", "Managed by Zone53.", "Set record comment.")
	providerFlag := flag.String("p", "route53", "Provider name from the config file.")
	flag.Parse()
	if *versionFlag {
		fmt.Printf("Git commit id: %s.\n", version)
		os.Exit(0)
	}
	cli := &Cli{
		Domain:     *domainFlag,
		RecordType: *typeFlag,
		File:       *fileFlag,
		Server:     *serverFlag,
		ZoneID:     *zoneFlag,
		Comment:    *commentFlag,
		Provider:   *providerFlag,
	}
	// The type gate and option checks run before any provider auth or
	// zone I/O happens.
	if _, _, err := ResolveType(cli.RecordType); err != nil {
		log.Fatalf("%s", err)
	}
	if err := cli.validate(); err != nil {
		log.Fatalf("%s", err)
	}
	cli.Config = *(cli.Config.Load(*configPathFlag))
	if err := cli.Run(context.Background(), cli.source(), cli.submitter()); err != nil {
		log.Fatalf("%s", err)
	}
}
