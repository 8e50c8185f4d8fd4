package zone53

import (
	"net"
	"os"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// FileSource reads a zone from a master file on disk.
type FileSource struct {
	Path   string
	Domain string
}

func (s *FileSource) Fetch() ([]RawRecord, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open zone file")
	}
	defer file.Close()
	zp := dns.NewZoneParser(file, fqdn(s.Domain), s.Path)
	records := make([]RawRecord, 0)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		if r, ok := RR2RawRecord(rr, s.Domain); ok {
			records = append(records, r)
		}
	}
	if err := zp.Err(); err != nil {
		return nil, errors.Wrap(err, "parse zone file")
	}
	return records, nil
}

// AxfrSource transfers a zone from an upstream DNS server. The server must
// allow AXFR for the domain, test with `dig AXFR <domain> @<server>`.
type AxfrSource struct {
	Server   string
	Domain   string
	TsigAlg  string
	TsigName string
	Tsig     string
}

func (s *AxfrSource) Fetch() ([]RawRecord, error) {
	host := s.Server
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, "53")
	}
	tr := &dns.Transfer{}
	m := &dns.Msg{}
	m.SetAxfr(fqdn(s.Domain))
	if s.Tsig != "" {
		tr.TsigSecret = map[string]string{s.TsigName: s.Tsig}
		m.SetTsig(s.TsigName, s.TsigAlg, 300, time.Now().Unix())
	}
	channel, err := tr.In(m, host)
	if err != nil {
		return nil, errors.Wrapf(err, "transfer from %s", host)
	}
	records := make([]RawRecord, 0)
	for v := range channel {
		if v.Error != nil {
			return nil, errors.Wrapf(v.Error, "transfer envelope from %s", host)
		}
		for _, rr := range v.RR {
			if r, ok := RR2RawRecord(rr, s.Domain); ok {
				records = append(records, r)
			}
		}
	}
	return records, nil
}
