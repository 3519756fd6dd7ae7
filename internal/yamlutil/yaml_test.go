package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-txt2md/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

type testMeta struct {
	Title string   `yaml:"title,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    testConfig
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			want: testConfig{Name: "test", Count: 42, Enabled: true},
		},
		{
			name: "unknown fields ignored",
			data: []byte("name: test\nextra: x"),
			dest: &testConfig{},
			want: testConfig{Name: "test"},
		},
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got := *tt.dest.(*testConfig); got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("name: ok"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if cfg.Name != "ok" {
			t.Errorf("Name = %q, want ok", cfg.Name)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: ok\ntypo: 1"), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error %q should carry the yamlutil prefix", err)
		}
	})

	t.Run("size limit enforced", func(t *testing.T) {
		t.Parallel()

		data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
		var cfg testConfig
		if err := yamlutil.UnmarshalStrict(data, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestMarshal_IndentsSequences(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testMeta{Title: "Notes", Tags: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	want := "title: Notes\ntags:\n  - a\n  - b\n"
	if string(out) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", out, want)
	}
}

func TestFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want string
	}{
		{
			name: "fenced block",
			v:    testMeta{Title: "Notes"},
			want: "---\ntitle: Notes\n---\n",
		},
		{
			name: "empty mapping yields nothing",
			v:    testMeta{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := yamlutil.FrontMatter(tt.v)
			if err != nil {
				t.Fatalf("FrontMatter() unexpected error: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("FrontMatter() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFrontMatter_RoundTrip(t *testing.T) {
	t.Parallel()

	in := testMeta{Title: "Status: green", Tags: []string{"ops", "weekly"}}
	out, err := yamlutil.FrontMatter(in)
	if err != nil {
		t.Fatalf("FrontMatter() unexpected error: %v", err)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(string(out), "---\n"), "---\n")
	var got testMeta
	if err := yamlutil.UnmarshalStrict([]byte(body), &got); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if got.Title != in.Title || strings.Join(got.Tags, ",") != "ops,weekly" {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}
