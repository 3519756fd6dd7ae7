//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// generatePlainText builds a plain-text document with n sections that
// trigger every formatter pass.
func generatePlainText(n int) string {
	var sb strings.Builder
	sb.WriteString("Benchmark Document Title\n\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "SECTION %d OVERVIEW\n", i)
		sb.WriteString("Some prose with a link to https://example.com/page.\n\n")
		sb.WriteString("Details:\n• first point\n• second point\n1) step one\n2) step two\n\n")
		sb.WriteString("    func example() {\n        return\n    }\n\n\n\n")
	}
	return sb.String()
}

func BenchmarkFormat(b *testing.B) {
	for _, size := range []int{1, 10, 100, 1000} {
		content := generatePlainText(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Format(content, DefaultFormatOptions())
			}
		})
	}
}

func BenchmarkLooksLikeMarkdown(b *testing.B) {
	plain := generatePlainText(100)
	formatted := Format(plain, DefaultFormatOptions())

	for _, in := range []struct {
		name    string
		content string
	}{
		{"plain", plain},
		{"markdown", formatted},
	} {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = LooksLikeMarkdown(in.content)
			}
		})
	}
}

func BenchmarkFormatParallel(b *testing.B) {
	content := generatePlainText(50)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = Format(content, DefaultFormatOptions())
		}
	})
}

func BenchmarkGoldmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter()
	ctx := context.Background()
	content := Format(generatePlainText(50), DefaultFormatOptions())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := converter.ToHTML(ctx, content, "Benchmark", ""); err != nil {
			b.Fatal(err)
		}
	}
}
