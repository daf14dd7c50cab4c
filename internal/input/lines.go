package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/iburimskiy/clickspark/internal/spark"
)

// LineSource reads presses as "x y" pairs, one per line. Blank lines and
// lines starting with '#' are skipped; malformed lines are logged and
// skipped.
type LineSource struct {
	r io.Reader
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

// Run returns when the reader is exhausted. Cancelling ctx stops delivery
// but cannot interrupt a blocked read.
func (s *LineSource) Run(ctx context.Context, h Handler) error {
	sc := bufio.NewScanner(s.r)
	for n := 1; sc.Scan(); n++ {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			slog.Warn("skipping input line", "line", n, "error", err)
			continue
		}
		h(p)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func parsePoint(line string) (spark.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return spark.Point{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return spark.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return spark.Point{}, fmt.Errorf("y: %w", err)
	}
	return spark.Point{X: x, Y: y}, nil
}
