// Package yamlutil wraps goccy/go-yaml for configuration files and
// document front matter so callers never import the YAML library directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to 1 MiB.
const MaxInputSize = 1 << 20

// frontMatterFence delimits a YAML front matter block.
const frontMatterFence = "---\n"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes YAML, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict decodes YAML and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as block-style YAML with indented sequences.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// FrontMatter encodes v between "---" fences, followed by a newline.
// A value that encodes to an empty mapping yields nil.
func FrontMatter(v any) ([]byte, error) {
	body, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("{}")) {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + 2*len(frontMatterFence) + 1)
	buf.WriteString(frontMatterFence)
	buf.Write(body)
	buf.WriteByte('\n')
	buf.WriteString(frontMatterFence)
	return buf.Bytes(), nil
}
