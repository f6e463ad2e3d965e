package core

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/recall/internal/contract"
)

// Suffixes appended to an operation name to form its history list keys.
const (
	inputsSuffix  = ":inputs"
	outputsSuffix = ":outputs"
)

// recorder bundles the two cross-cutting instrumentation stages around
// a cache operation: call counting and call-history recording. The
// stages are invoked explicitly by the write path in a fixed order.
type recorder struct {
	kv contract.KeyValueStore
	op string
}

func (c *Cache) recorder(op string) recorder {
	return recorder{kv: c.kv, op: op}
}

// countCall bumps the per-operation invocation counter. An absent
// counter key is treated as zero by the store.
func (r recorder) countCall(ctx context.Context) error {
	if _, err := r.kv.Incr(ctx, r.op); err != nil {
		return fmt.Errorf("failed to count call for %s: %w", r.op, err)
	}
	return nil
}

// recordCall appends the display form of the call's inputs and the
// produced output to the operation's history lists, inputs first so the
// i-th entries of both lists describe the same invocation.
func (r recorder) recordCall(ctx context.Context, input string, output any) error {
	if err := r.kv.RPush(ctx, r.op+inputsSuffix, input); err != nil {
		return fmt.Errorf("failed to record input for %s: %w", r.op, err)
	}
	if err := r.kv.RPush(ctx, r.op+outputsSuffix, output); err != nil {
		return fmt.Errorf("failed to record output for %s: %w", r.op, err)
	}
	return nil
}

// DisplayArgs renders positional arguments in the tuple notation used
// by recorded input history, e.g. ('foo',) or (123, 4.5).
func DisplayArgs(args ...any) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(displayValue(arg))
	}
	// Single-element tuples carry a trailing comma.
	if len(args) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

func displayValue(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(x) + "'"
	case []byte:
		return displayBytes(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return displayReal(float64(x))
	case float64:
		return displayReal(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// displayReal keeps integral floats distinguishable from integers in
// recorded history, so 2.0 is rendered as "2.0" rather than "2".
func displayReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}

// displayBytes renders binary values as b'...' with printable ASCII
// kept literal and everything else hex-escaped.
func displayBytes(raw []byte) string {
	var b strings.Builder
	b.WriteString("b'")
	for _, c := range raw {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\'':
			b.WriteString(`\'`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, `\x%02x`, c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
