package rawuri

//go:generate errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rawuri/internal/constraints"
)

// URI holds the components of a parsed URI.
//
// Every component is a substring of the input given to [Parse]; the zero
// value renders as ":" and reports all optional components absent.
type URI struct {
	raw    string
	scheme string
	path   string
	// slash records whether the path was introduced by an explicit '/'
	// delimiter after the authority, so rendering can put it back.
	slash bool

	authority component
	userinfo  component
	host      component
	port      component
	query     component
	fragment  component
}

// component is an optional URI part. A present zero-length component is
// distinct from an absent one: "http://host?" has an empty query,
// "http://host" has none.
type component struct {
	val string
	ok  bool
}

func present(s string) component { return component{val: s, ok: true} }

// Parse splits a URI into its components.
//
// The scheme is everything before the first ':'; inputs without a ':' fail
// with [ErrMissingScheme]. An authority is recognized only when "//"
// immediately follows the scheme colon with at least one byte after it,
// otherwise the whole remainder up to '?' or '#' becomes the path.
// No component is validated or normalized — see the package documentation.
func Parse[T constraints.Byteseq](src T) (URI, error) {
	s := string(src)

	ci := strings.IndexByte(s, ':')
	if ci < 0 {
		return URI{}, errtrace.Wrap(ErrMissingScheme)
	}

	u := URI{raw: s, scheme: s[:ci]}
	rest := ci + 1

	if len(s)-rest < 3 || s[rest] != '/' || s[rest+1] != '/' {
		// URN-style: no authority, the remainder is the path.
		qi := indexFrom(s, '?', rest)
		fi := indexFrom(s, '#', max(qi, rest))
		u.path = s[rest:firstOf(qi, fi, len(s))]
		u.cutQueryFragment(qi, fi)
		return u, nil
	}

	// The '/', '?' and '#' searches chain: each one starts where the
	// previous delimiter was found, or where it would have started when
	// absent. The found positions are therefore strictly increasing and a
	// delimiter inside an earlier component is never picked up again.
	as := rest + 2
	si := indexFrom(s, '/', as)
	qi := indexFrom(s, '?', max(si, as))
	fi := indexFrom(s, '#', max(qi, max(si, as)))

	u.splitAuthority(s[as:firstOf(si, qi, fi, len(s))])
	if si >= 0 {
		u.slash = true
		u.path = s[si+1 : firstOf(qi, fi, len(s))]
	}
	u.cutQueryFragment(qi, fi)
	return u, nil
}

// splitAuthority derives userinfo, host and port from the authority span.
// Userinfo is everything before the first '@'; the port follows the first
// ':' after it. An '@' at offset zero yields an empty, present userinfo.
func (u *URI) splitAuthority(a string) {
	u.authority = present(a)

	hostport := a
	if ui := strings.IndexByte(a, '@'); ui >= 0 {
		u.userinfo = present(a[:ui])
		hostport = a[ui+1:]
	}
	if pi := strings.IndexByte(hostport, ':'); pi >= 0 {
		u.host = present(hostport[:pi])
		u.port = present(hostport[pi+1:])
	} else {
		u.host = present(hostport)
	}
}

func (u *URI) cutQueryFragment(qi, fi int) {
	if qi >= 0 {
		u.query = present(u.raw[qi+1 : firstOf(fi, len(u.raw))])
	}
	if fi >= 0 {
		u.fragment = present(u.raw[fi+1:])
	}
}

// indexFrom returns the absolute position of the first c at or after start,
// or -1.
func indexFrom(s string, c byte, start int) int {
	if i := strings.IndexByte(s[start:], c); i >= 0 {
		return start + i
	}
	return -1
}

// firstOf returns the first non-negative position; the last argument is the
// end-of-input fallback and must be non-negative.
func firstOf(positions ...int) int {
	for _, p := range positions {
		if p >= 0 {
			return p
		}
	}
	return 0
}

// Raw returns the original input the URI was parsed from.
func (u URI) Raw() string { return u.raw }

// Scheme returns the text before the first ':' of the input.
func (u URI) Scheme() string { return u.scheme }

// Path returns the path component. The path is always present and may be
// empty; the leading '/' delimiter, when one separated it from the
// authority, is not included.
func (u URI) Path() string { return u.path }

// Authority returns the authority component and whether the input had one.
func (u URI) Authority() (string, bool) { return u.authority.val, u.authority.ok }

// Userinfo returns the text before the first '@' of the authority and
// whether such an '@' was present.
func (u URI) Userinfo() (string, bool) { return u.userinfo.val, u.userinfo.ok }

// Host returns the host component. It is present whenever the authority is.
func (u URI) Host() (string, bool) { return u.host.val, u.host.ok }

// Port returns the text after the first ':' following the host start and
// whether such a ':' was present. The port is not checked to be numeric.
func (u URI) Port() (string, bool) { return u.port.val, u.port.ok }

// Query returns the query component and whether the input had a '?'.
func (u URI) Query() (string, bool) { return u.query.val, u.query.ok }

// Fragment returns the fragment component and whether the input had a '#'.
func (u URI) Fragment() (string, bool) { return u.fragment.val, u.fragment.ok }

// Equal compares this URI with another for equality, component by component
// and byte for byte.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.scheme == other.scheme &&
		u.path == other.path &&
		u.slash == other.slash &&
		u.authority == other.authority &&
		u.userinfo == other.userinfo &&
		u.host == other.host &&
		u.port == other.port &&
		u.query == other.query &&
		u.fragment == other.fragment
}
