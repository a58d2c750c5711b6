package resolve

import (
	"fmt"
	"net"
	"regexp"

	"github.com/portsweep/portsweep/internal/exception"
	"github.com/portsweep/portsweep/internal/logger"
	"github.com/projectdiscovery/mapcidr"
)

// matches v4 and v6 prefix lengths, up to /128
var cidrSuffix = regexp.MustCompile(`\/\d{1,3}$`)

// Addr resolves a hostname or IP literal to a usable IP address. IPv4
// addresses are preferred when a hostname resolves to several.
func Addr(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		return ip.String(), nil
	}

	ips, err := net.LookupIP(target)

	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", exception.ErrResolutionFailure, target, err)
	}

	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}

	if len(ips) > 0 {
		return ips[0].String(), nil
	}

	return "", fmt.Errorf("%w: %s", exception.ErrResolutionFailure, target)
}

// Targets expands a target into the list of addresses to scan. CIDR
// targets expand to their member IPs; anything else resolves to a
// single address.
func Targets(target string) ([]string, error) {
	log := logger.New()

	if cidrSuffix.MatchString(target) {
		ips, err := mapcidr.IPAddresses(target)

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", exception.ErrResolutionFailure, target, err)
		}

		log.Debug().
			Str("cidr", target).
			Int("count", len(ips)).
			Msg("expanded cidr target")

		return ips, nil
	}

	ip, err := Addr(target)

	if err != nil {
		return nil, err
	}

	return []string{ip}, nil
}
