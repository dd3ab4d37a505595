// Package osc52 encodes clipboard writes as OSC 52 escape sequences and
// decodes the terminal's answer to a clipboard query.
//
// Write format (bit-exact):
//
//	ESC ] 52 ; c ; <base64 payload> BEL
//
// Replies use the same framing and may end in ST (ESC \) instead of BEL.
package osc52

import (
	"bytes"
	"encoding/base64"
	"fmt"

	gosc52 "github.com/aymanbagabas/go-osc52/v2"

	"bclip/config"
	errs "bclip/internal/errors"
)

const (
	esc = 0x1b
	bel = 0x07
)

var (
	prefix   = []byte("\x1b]52;c;")
	oscIntro = []byte("\x1b]52;")
)

// EncodedLen returns the base64 length of an n-byte payload.
func EncodedLen(n int) int { return base64.StdEncoding.EncodedLen(n) }

// Encode wraps payload in an OSC 52 clipboard write.  It fails with
// ErrSizeExceeded, producing nothing, when the base64 body would be
// larger than config.MaxEncodedSize.  An empty payload yields the
// clear sequence ESC ] 52 ; c ; BEL.
func Encode(payload []byte) ([]byte, error) {
	n := EncodedLen(len(payload))
	if n > config.MaxEncodedSize {
		return nil, fmt.Errorf("%w: %d encoded bytes, max %d",
			errs.ErrSizeExceeded, n, config.MaxEncodedSize)
	}

	seq := make([]byte, len(prefix)+n+1)
	copy(seq, prefix)
	base64.StdEncoding.Encode(seq[len(prefix):], payload)
	seq[len(seq)-1] = bel
	return seq, nil
}

// QuerySequence is the request asking the terminal to report its
// clipboard: ESC ] 52 ; c ; ? BEL.
func QuerySequence() []byte {
	return []byte(gosc52.Query().String())
}

// Terminated reports whether buf holds a complete reply, i.e. a BEL or
// ST after the OSC introducer.
func Terminated(buf []byte) bool {
	i := bytes.Index(buf, oscIntro)
	if i < 0 {
		return false
	}
	_, ok := terminator(buf[i+len(oscIntro):])
	return ok
}

// DecodeResponse extracts the clipboard payload from a query reply.
// Bytes preceding the OSC introducer (stray keystrokes) are ignored.
// Every malformed reply is reported as *errors.ProtocolError.
func DecodeResponse(buf []byte) ([]byte, error) {
	i := bytes.Index(buf, oscIntro)
	if i < 0 {
		return nil, errs.Protocol("decode", "reply is not an OSC 52 sequence", nil)
	}
	rest := buf[i+len(oscIntro):]

	end, ok := terminator(rest)
	if !ok {
		return nil, errs.Protocol("decode", "unterminated sequence", nil)
	}
	params := rest[:end]

	// params is "<selection>;<body>"
	semi := bytes.IndexByte(params, ';')
	if semi < 0 {
		return nil, errs.Protocol("decode", "missing clipboard selector", nil)
	}
	for _, c := range params[:semi] {
		if !isSelector(c) {
			return nil, errs.Protocol("decode",
				fmt.Sprintf("invalid clipboard selector %q", params[:semi]), nil)
		}
	}
	body := params[semi+1:]

	if bytes.Equal(body, []byte("?")) {
		return nil, errs.Protocol("decode", "terminal echoed the query instead of answering", nil)
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Strict().Decode(out, body)
	if err != nil {
		return nil, errs.Protocol("decode", "body is not base64", err)
	}
	return out[:n], nil
}

// terminator returns the index of the first BEL or ST in b.
func terminator(b []byte) (int, bool) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case bel:
			return i, true
		case esc:
			if i+1 < len(b) && b[i+1] == '\\' {
				return i, true
			}
		}
	}
	return 0, false
}

// isSelector reports whether c is a valid xterm selection parameter.
func isSelector(c byte) bool {
	switch c {
	case 'c', 'p', 'q', 's':
		return true
	}
	return c >= '0' && c <= '7'
}
