// Package rawuri splits RFC 3986 URIs into their raw components and
// percent-encodes/decodes byte sequences.
//
// # Overview
//
// The package does exactly two things:
//
//   - [Parse] decomposes a URI into scheme, authority (with userinfo, host
//     and port), path, query and fragment. Every component of the returned
//     [URI] is a slice of the original input — parsing copies nothing and
//     performs no allocation.
//
//   - [Escape] and [Unescape] convert between raw bytes and the "%XX"
//     percent-encoded form, driven by the RFC 3986 unreserved character set
//     (letters, digits, '-', '.', '_', '~').
//
// "Raw" is the operative word: components are located purely by delimiter
// position and returned byte for byte as they appear in the input. There is
// no validation of scheme or host syntax, no IP-literal bracket handling,
// no case or default-port normalization, no relative-reference resolution
// and no IRI support. Callers that need URI semantics beyond splitting
// should build them on top of this package or use [net/url].
//
// # Parsing
//
//	u, err := rawuri.Parse("http://alice@example.com:8080/docs?q=1#top")
//	if err != nil {
//	    // rawuri.ErrMissingScheme: the input contains no ':'
//	}
//	u.Scheme()   // "http"
//	u.Path()     // "docs"
//	host, ok := u.Host()     // "example.com", true
//	port, ok := u.Port()     // "8080", true
//
// Optional components report presence explicitly, so an empty component is
// distinguishable from an absent one:
//
//	u, _ := rawuri.Parse("http://host/path?#frag")
//	q, ok := u.Query()    // "", true  — '?' present, query empty
//	u, _ = rawuri.Parse("http://host/path")
//	q, ok = u.Query()     // "", false — no '?' in the input
//
// A URI without the "//" authority marker keeps its entire remainder as the
// path, URN-style:
//
//	u, _ := rawuri.Parse("mailto:bob@example.com")
//	u.Path()              // "bob@example.com"
//	_, ok := u.Authority() // false
//
// # Escaping
//
//	rawuri.Escape("hello world")          // "hello%20world"
//	rawuri.Unescape("hello%20world")      // "hello world", nil
//	rawuri.Unescape("bad%")               // "", rawuri.ErrInvalidEscape
//
// Both functions are generic over string and []byte inputs and size their
// single output allocation with a counting pre-pass.
//
// # Rendering
//
// A parsed [URI] renders back to its exact input through [URI.String] and
// [URI.RenderTo], and marshals as text for use in JSON or XML structs.
//
// # Concurrency
//
// All functions are pure and touch no shared state; they are safe to call
// from any number of goroutines. A [URI] is immutable after [Parse].
package rawuri
