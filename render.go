package rawuri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rawuri/internal/ioutil"
	"github.com/ghettovoice/rawuri/internal/util"
)

// RenderTo writes the URI components back in wire order:
//
//	scheme ":" [ "//" authority ] [ "/" ] path [ "?" query ] [ "#" fragment ]
//
// For a URI produced by [Parse] the output is byte-identical to the parsed
// input.
func (u URI) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString(u.scheme)
	cw.WriteString(":")
	if u.authority.ok {
		cw.WriteString("//")
		cw.WriteString(u.authority.val)
	}
	if u.slash {
		cw.WriteString("/")
	}
	cw.WriteString(u.path)
	if u.query.ok {
		cw.WriteString("?")
		cw.WriteString(u.query.val)
	}
	if u.fragment.ok {
		cw.WriteString("#")
		cw.WriteString(u.fragment.val)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the URI.
func (u URI) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URI) UnmarshalText(text []byte) error {
	u2, err := Parse(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = u2
	return nil
}
