package zone53

import (
	"fmt"

	"github.com/miekg/dns"
)

// recordTypes is the allow-list of types the tool will move into a hosted
// zone. Everything maps to class IN.
var recordTypes = map[string]uint16{
	"A":     dns.TypeA,
	"AAAA":  dns.TypeAAAA,
	"CNAME": dns.TypeCNAME,
	"MX":    dns.TypeMX,
	"NS":    dns.TypeNS,
	"PTR":   dns.TypePTR,
	"SPF":   dns.TypeSPF,
	"TXT":   dns.TypeTXT,
	"SRV":   dns.TypeSRV,
}

type UnsupportedTypeError struct {
	Token string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unknown or unsupported record type: %s", e.Token)
}

// ResolveType maps a record type token to its rdtype and class. Tokens are
// case-sensitive. Called before any zone data is read so a bad -t fails
// without network or file I/O.
func ResolveType(token string) (rdtype, class uint16, err error) {
	t, ok := recordTypes[token]
	if !ok {
		return 0, 0, &UnsupportedTypeError{Token: token}
	}
	return t, dns.ClassINET, nil
}
