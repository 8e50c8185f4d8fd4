package zone53

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"github.com/olekukonko/tablewriter"
)

func fqdn(input string) string {
	return dns.Fqdn(input)
}

func defqdn(input string) string {
	if input[len(input)-1] == '.' {
		return input[:len(input)-1]
	} else {
		return input
	}
}

// relName strips the zone origin from an absolute name, returning "@" for
// the apex itself.
func relName(name, domain string) string {
	apex := fqdn(domain)
	name = fqdn(name)
	if name == apex {
		return "@"
	}
	return strings.TrimSuffix(name, "."+apex)
}

func quoteTxt(parts []string) string {
	return "\"" + strings.Join(parts, "\" \"") + "\""
}

// RR2RawRecord renders one parsed resource record into the raw tuple form,
// value in standard presentation order. Types outside the allow-list are
// skipped at this boundary.
func RR2RawRecord(rr dns.RR, domain string) (RawRecord, bool) {
	h := rr.Header()
	r := RawRecord{
		Name:  relName(h.Name, domain),
		Class: h.Class,
		Type:  h.Rrtype,
		TTL:   h.Ttl,
	}
	switch v := rr.(type) {
	case *dns.A:
		r.Value = v.A.String()
	case *dns.AAAA:
		r.Value = v.AAAA.String()
	case *dns.CNAME:
		r.Value = v.Target
	case *dns.TXT:
		r.Value = quoteTxt(v.Txt)
	case *dns.SPF:
		r.Value = quoteTxt(v.Txt)
	case *dns.NS:
		r.Value = v.Ns
	case *dns.PTR:
		r.Value = v.Ptr
	case *dns.MX:
		r.Value = fmt.Sprintf("%d %s", v.Preference, v.Mx)
	case *dns.SRV:
		r.Value = fmt.Sprintf("%d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
	default:
		return RawRecord{}, false
	}
	return r, true
}

func printChanges(changes []Change) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Action", "Name", "Value", "Type", "TTL"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})
	table.SetAutoWrapText(false)
	for _, c := range changes {
		value := c.Values[0]
		if len(value) > 48 {
			value = value[:48] + string("...")
		}
		table.Append([]string{c.Action, c.Name, value, c.Type, strconv.FormatUint(uint64(c.TTL), 10)})
		for _, v := range c.Values[1:] {
			if len(v) > 48 {
				v = v[:48] + string("...")
			}
			table.Append([]string{"", "", v, "", ""})
		}
	}
	table.Render()
}
