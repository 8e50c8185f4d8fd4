package zone53

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

var (
	tsigAlg = map[string]string{
		"hmac-sha1":   "hmac-sha1.",
		"hmac-sha224": "hmac-sha224.",
		"hmac-sha256": "hmac-sha256.",
		"hmac-sha384": "hmac-sha384.",
		"hmac-sha512": "hmac-sha512.",
	}
)

// Config carries provider credentials and the TSIG key for AXFR transfers.
// The default route53 provider works without any config file, ambient AWS
// credentials are enough.
type Config struct {
	Providers map[string]map[string]string
	Tsig      string
}

func (s *Config) Load(path string) *Config {
	if path == "" {
		path = os.Getenv("ZONE53_CONFIG")
	}
	if path == "" {
		s.Providers = make(map[string]map[string]string)
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Load config error, %s", err)
	}
	err = json.Unmarshal(data, s)
	if err != nil {
		log.Fatalf("Parse config error, %s", err)
	}
	if s.Providers == nil {
		s.Providers = make(map[string]map[string]string)
	}
	return s
}

// parseTsig understands "alg:name:secret" and "name:secret", the latter
// defaulting to hmac-sha1.
func (s *Config) parseTsig() (alg, name, secret string, err error) {
	t := strings.Split(s.Tsig, ":")
	if len(t) == 3 {
		if _, ok := tsigAlg[t[0]]; ok {
			alg = tsigAlg[t[0]]
		} else {
			return "", "", "", errors.New("tsig algorithm not found")
		}
		name = dns.Fqdn(t[1])
		secret = t[2]
		return
	} else if len(t) == 2 {
		alg = "hmac-sha1."
		name = dns.Fqdn(t[0])
		secret = t[1]
		return
	} else {
		return "", "", "", errors.New("tsig name not found")
	}
}
