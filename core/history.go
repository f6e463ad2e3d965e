package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/huangsam/recall/schema"
)

// CallRecord pairs one recorded input with the output it produced.
type CallRecord struct {
	Operation string
	Index     int
	Input     string
	Output    string
}

// CallCount returns the recorded invocation count for op, 0 when the
// counter key is absent.
func (c *Cache) CallCount(ctx context.Context, op string) (int64, error) {
	raw, found, err := c.kv.Get(ctx, op)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter for %s holds %q: %w", op, raw, err)
	}
	return n, nil
}

// History returns the paired input/output records for op in call order.
// Pairing stops at the shorter list when the two have drifted apart
// under concurrent writes.
func (c *Cache) History(ctx context.Context, op string) ([]CallRecord, error) {
	inputs, err := c.kv.LRange(ctx, op+inputsSuffix, 0, -1)
	if err != nil {
		return nil, err
	}
	outputs, err := c.kv.LRange(ctx, op+outputsSuffix, 0, -1)
	if err != nil {
		return nil, err
	}

	pairs := min(len(inputs), len(outputs))
	records := make([]CallRecord, 0, pairs)
	for i := 0; i < pairs; i++ {
		records = append(records, CallRecord{
			Operation: op,
			Index:     i,
			Input:     inputs[i],
			Output:    outputs[i],
		})
	}
	return records, nil
}

// OperationStatus summarizes the counter and history list lengths for
// op, flagging any drift between them.
func (c *Cache) OperationStatus(ctx context.Context, op string) (schema.OperationStatus, error) {
	status := schema.OperationStatus{Operation: op}

	calls, err := c.CallCount(ctx, op)
	if err != nil {
		return status, fmt.Errorf("failed to read counter for %s: %w", op, err)
	}
	inputs, err := c.kv.LRange(ctx, op+inputsSuffix, 0, -1)
	if err != nil {
		return status, fmt.Errorf("failed to read input history for %s: %w", op, err)
	}
	outputs, err := c.kv.LRange(ctx, op+outputsSuffix, 0, -1)
	if err != nil {
		return status, fmt.Errorf("failed to read output history for %s: %w", op, err)
	}

	status.Calls = calls
	status.Inputs = int64(len(inputs))
	status.Outputs = int64(len(outputs))
	status.Drift = calls != status.Inputs || calls != status.Outputs
	return status, nil
}
