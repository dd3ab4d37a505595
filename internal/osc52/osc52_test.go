package osc52

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	gosc52 "github.com/aymanbagabas/go-osc52/v2"

	"bclip/config"
	errs "bclip/internal/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty clears", "", "\x1b]52;c;\x07"},
		{"hello", "Hello", "\x1b]52;c;SGVsbG8=\x07"},
		{"hello world", "Hello World", "\x1b]52;c;SGVsbG8gV29ybGQ=\x07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestEncode_MatchesGoOSC52 cross-checks the framing against the
// go-osc52 library's default (system clipboard, BEL terminated) mode.
func TestEncode_MatchesGoOSC52(t *testing.T) {
	for _, s := range []string{"a", "clipboard ✓", strings.Repeat("xyz", 100)} {
		got, err := Encode([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		if want := gosc52.New(s).String(); string(got) != want {
			t.Errorf("Encode(%q) = %q, go-osc52 = %q", s, got, want)
		}
	}
}

func TestEncode_SizeBoundary(t *testing.T) {
	// 3 raw bytes encode to exactly 4 base64 bytes, so this payload
	// encodes to exactly MaxEncodedSize.
	atLimit := config.MaxEncodedSize / 4 * 3
	if EncodedLen(atLimit) != config.MaxEncodedSize {
		t.Fatalf("EncodedLen(%d) = %d", atLimit, EncodedLen(atLimit))
	}

	seq, err := Encode(make([]byte, atLimit))
	if err != nil {
		t.Fatalf("payload at the limit should encode: %v", err)
	}
	if len(seq) != len(prefix)+config.MaxEncodedSize+1 {
		t.Errorf("sequence length = %d", len(seq))
	}

	seq, err = Encode(make([]byte, atLimit+1))
	if !errs.Is(err, errs.ErrSizeExceeded) {
		t.Fatalf("err = %v, want ErrSizeExceeded", err)
	}
	if seq != nil {
		t.Error("no partial sequence may be returned on failure")
	}
}

func TestQuerySequence(t *testing.T) {
	if got := string(QuerySequence()); got != "\x1b]52;c;?\x07" {
		t.Errorf("QuerySequence() = %q", got)
	}
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bel", "\x1b]52;c;SGVsbG8=\x07", "Hello"},
		{"st", "\x1b]52;c;SGVsbG8=\x1b\\", "Hello"},
		{"primary selector", "\x1b]52;p;SGVsbG8=\x07", "Hello"},
		{"empty selector", "\x1b]52;;SGVsbG8=\x07", "Hello"},
		{"empty body", "\x1b]52;c;\x07", ""},
		{"leading noise", "abc\x1b]52;c;SGVsbG8=\x07", "Hello"},
		{"trailing noise", "\x1b]52;c;SGVsbG8=\x07xyz", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeResponse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("DecodeResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeResponse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSub string
	}{
		{"empty", "", "not an OSC 52"},
		{"other osc", "\x1b]11;rgb:0000/0000/0000\x07", "not an OSC 52"},
		{"unterminated", "\x1b]52;c;SGVsbG8=", "unterminated"},
		{"dangling esc", "\x1b]52;c;SGVsbG8=\x1b", "unterminated"},
		{"no selector", "\x1b]52;SGVsbG8=\x07", "selector"},
		{"bad selector", "\x1b]52;zz;SGVsbG8=\x07", "selector"},
		{"query echo", "\x1b]52;c;?\x07", "echoed"},
		{"bad base64", "\x1b]52;c;!!!!\x07", "not base64"},
		{"missing padding", "\x1b]52;c;SGVsbG8\x07", "not base64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResponse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *errs.ProtocolError
			if !errs.As(err, &pe) {
				t.Fatalf("error %T is not a ProtocolError", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("x"),
		[]byte("Hello World\n"),
		{0x00, 0xff, 0x10, 0x80},
		bytes.Repeat([]byte("0123456789"), 1000),
	}
	for _, in := range inputs {
		seq, err := Encode(in)
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeResponse(seq)
		if err != nil {
			t.Fatalf("DecodeResponse(Encode(%q)): %v", in, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestTerminated(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"\x1b]52;c;abc", false},
		{"\x1b]52;c;abc\x1b", false},
		{"\x1b]52;c;abc\x07", true},
		{"\x1b]52;c;abc\x1b\\", true},
		{"noise\x07", false},
	}
	for _, tt := range tests {
		if got := Terminated([]byte(tt.input)); got != tt.want {
			t.Errorf("Terminated(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEncodedLen(t *testing.T) {
	if got, want := EncodedLen(11), len(base64.StdEncoding.EncodeToString(make([]byte, 11))); got != want {
		t.Errorf("EncodedLen(11) = %d, want %d", got, want)
	}
}
