package zone53

import (
	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

var ErrEmptySource = errors.New("no records found to process")

// Aggregate groups raw records of the requested type by canonical
// fully-qualified name. Records of other types or classes are dropped here
// even if the source claims to have filtered already; this is the last gate
// before the change set.
//
// Output order is first-seen order of each name, so identical input always
// produces identical groups and therefore identical batches.
func Aggregate(records []RawRecord, domain string, rdtype uint16) ([]RecordGroup, error) {
	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	apex := fqdn(domain)
	groups := make(map[string]*RecordGroup)
	order := make([]string, 0, len(records))
	for _, r := range records {
		if r.Type != rdtype || r.Class != dns.ClassINET {
			continue
		}
		name := apex
		if r.Name != "@" {
			name = r.Name + "." + apex
		}
		// The hosted zone carries its own NS delegation at the apex,
		// never clobber it.
		if name == apex && rdtype == dns.TypeNS {
			continue
		}
		g, ok := groups[name]
		if !ok {
			// First record for a name fixes the group TTL. Later records
			// with another TTL do not move it, one round-robin set keeps
			// one TTL.
			g = &RecordGroup{Name: name, TTL: r.TTL}
			groups[name] = g
			order = append(order, name)
		}
		g.Values = append(g.Values, r.Value)
	}
	result := make([]RecordGroup, 0, len(order))
	for _, name := range order {
		result = append(result, *groups[name])
	}
	return result, nil
}
