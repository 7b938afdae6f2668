package middleware

import (
	"net"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
)

// ContextKeyTrustedProxy is set to true when the direct peer is a trusted
// proxy, so X-Forwarded-* headers from it may be honoured.
const ContextKeyTrustedProxy = "trusted_proxy"

// ParseTrustedProxies accepts IPs and CIDRs, the same forms gin's
// SetTrustedProxies takes.
func ParseTrustedProxies(proxies []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(proxies))
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.Contains(p, "/") {
			prefix, err := netip.ParsePrefix(p)
			if err != nil {
				return nil, errors.Wrapf(err, "trusted proxy %q", p)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(p)
		if err != nil {
			return nil, errors.Wrapf(err, "trusted proxy %q", p)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return prefixes, nil
}

// TrustedProxy marks requests whose remote address falls in proxies.
func TrustedProxy(proxies []netip.Prefix) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyTrustedProxy, isTrustedPeer(proxies, c.Request.RemoteAddr))
		c.Next()
	}
}

func isTrustedPeer(proxies []netip.Prefix, remoteAddr string) bool {
	if len(proxies) == 0 {
		return false
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(remoteAddr))
	if err != nil {
		host = strings.TrimSpace(remoteAddr)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
