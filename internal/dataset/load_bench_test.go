package dataset_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rshade/intersections/internal/dataset"
)

func benchItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("Street %d & Avenue %d", i, i%97)
	}
	return items
}

// BenchmarkDecode_Text benchmarks decoding 10k newline-separated items.
func BenchmarkDecode_Text(b *testing.B) {
	b.ReportAllocs()
	data := []byte(strings.Join(benchItems(10000), "\n"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Decode(data, dataset.FormatText); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecode_YAML benchmarks decoding a 10k item YAML sequence.
func BenchmarkDecode_YAML(b *testing.B) {
	b.ReportAllocs()
	var sb strings.Builder
	for _, item := range benchItems(10000) {
		fmt.Fprintf(&sb, "- %q\n", item)
	}
	data := []byte(sb.String())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Decode(data, dataset.FormatYAML); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecode_JSON benchmarks decoding a 10k item JSON array.
func BenchmarkDecode_JSON(b *testing.B) {
	b.ReportAllocs()
	data, err := json.Marshal(benchItems(10000))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Decode(data, dataset.FormatJSON); err != nil {
			b.Fatal(err)
		}
	}
}
