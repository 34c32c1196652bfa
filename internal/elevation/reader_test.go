package elevation

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("lat,ele")...),
			expected: "lat,ele",
		},
		{
			name:     "file without BOM",
			input:    []byte("lat,ele"),
			expected: "lat,ele",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM at start",
			input:    []byte{0xEF, 0xBB, 'a', 'b', 'c'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b', 'c'}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := io.ReadAll(newBOMSkippingReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "valid ASCII",
			input:    []byte("lat,ele"),
			expected: "lat,ele",
		},
		{
			name:     "valid multibyte",
			input:    []byte("name\nCôte-d'Or"),
			expected: "name\nCôte-d'Or",
		},
		{
			name:     "invalid single byte replaced",
			input:    []byte{'h', 'e', 0x80, 'l', 'o'},
			expected: "he?lo",
		},
		{
			name:     "truncated sequence at EOF replaced",
			input:    []byte{'a', 0xE2, 0x82},
			expected: "a??",
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := io.ReadAll(newUTF8Sanitizer(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer_SplitRune(t *testing.T) {
	// One byte per Read forces every multi-byte rune across read boundaries.
	input := "name\nAlpe d’Huez"
	r := newUTF8Sanitizer(iotest.OneByteReader(strings.NewReader(input)))

	result, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != input {
		t.Errorf("got %q, want %q", string(result), input)
	}
}

func TestParseReader(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("lat,ele,name\n45.1,1200,St\x80Bernard\n")...)

	table, err := ParseReader(bytes.NewReader(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Headers) != 3 || table.Headers[0] != "lat" {
		t.Fatalf("Headers = %q, want [lat ele name]", table.Headers)
	}
	if len(table.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(table.Records))
	}
	if got := table.Records[0].Text("name"); got != "St?Bernard" {
		t.Errorf("name = %q, want %q", got, "St?Bernard")
	}
	if got := table.Records[0].Float(ColEle); got != 1200 {
		t.Errorf("ele = %v, want 1200", got)
	}
}

func TestParseReader_Limit(t *testing.T) {
	input := "lat,ele\n1,2\n3,4"

	if _, err := ParseReader(strings.NewReader(input), int64(len(input))); err != nil {
		t.Fatalf("exact-size input rejected: %v", err)
	}

	_, err := ParseReader(strings.NewReader(input), int64(len(input)-1))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
	if !strings.Contains(err.Error(), "file too large") {
		t.Errorf("error %q should mention file too large", err)
	}
}

func TestParseReader_ReadError(t *testing.T) {
	boom := errors.New("disk gone")

	_, err := ParseReader(iotest.ErrReader(boom), 0)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
