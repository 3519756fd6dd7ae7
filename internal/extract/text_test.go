package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{
			name:  "empty",
			input: nil,
			want:  "",
		},
		{
			name:  "utf-8",
			input: []byte("Grüße"),
			want:  "Grüße",
		},
		{
			name:  "utf-8 BOM stripped",
			input: []byte("\xEF\xBB\xBFhello"),
			want:  "hello",
		},
		{
			name:  "utf-16 little endian",
			input: []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
			want:  "hi",
		},
		{
			name:  "utf-16 big endian",
			input: []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'},
			want:  "hi",
		},
		{
			name:  "line endings normalized",
			input: []byte("a\r\nb\rc"),
			want:  "a\nb\nc",
		},
		{
			name:  "NFC normalized",
			input: []byte("cafe\u0301"),
			want:  "caf\u00e9",
		},
		{
			name:  "latin-1 bytes replaced",
			input: []byte("caf\xe9 au lait"),
			want:  "caf\ufffd au lait",
		},
		{
			name:    "NUL bytes are binary",
			input:   []byte("PK\x03\x04\x00\x00"),
			wantErr: ErrBinaryContent,
		},
		{
			name:    "control bytes are binary",
			input:   []byte{0x01, 0x02, 0x03, 0x04, 0xff, 'a'},
			wantErr: ErrBinaryContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeText(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeText() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLooksLikeText_SamplesHead(t *testing.T) {
	t.Parallel()

	// A NUL past the sample window is not seen.
	content := strings.Repeat("a", textDetectionSampleSize) + "\x00"
	if !looksLikeText([]byte(content)) {
		t.Error("looksLikeText() = false, want true for NUL beyond the sample")
	}
}
