package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/recall/internal/contract"
)

// BoundOperation is a recorded operation bound to the store handle that
// owns its instrumentation data.
type BoundOperation interface {
	// Name returns the qualified operation name.
	Name() string

	// Handle returns the store handle holding the recorded data.
	Handle() contract.KeyValueStore
}

type boundOp struct {
	name string
	kv   contract.KeyValueStore
}

func (b boundOp) Name() string                   { return b.name }
func (b boundOp) Handle() contract.KeyValueStore { return b.kv }

// StoreOperation returns the cache's Store method as a bound operation,
// ready to be passed to Replay.
func (c *Cache) StoreOperation() BoundOperation {
	return boundOp{name: StoreOp, kv: c.kv}
}

// Operation binds an arbitrary operation name to the cache's store
// handle. Useful for replaying by name from the CLI.
func (c *Cache) Operation(name string) BoundOperation {
	return boundOp{name: name, kv: c.kv}
}

// Replay prints the recorded call history of op to stdout.
func Replay(ctx context.Context, op BoundOperation) {
	Freplay(ctx, os.Stdout, op)
}

// Freplay writes the recorded call history of op to w. It is a silent
// no-op when op is nil, carries no handle, or the handle does not
// report a live connection.
//
// Inputs and outputs are paired positionally; pairing stops at the
// shorter list when the two have drifted apart under concurrent writes.
func Freplay(ctx context.Context, w io.Writer, op BoundOperation) {
	if op == nil {
		return
	}
	kv := op.Handle()
	if kv == nil {
		return
	}
	live, ok := kv.(contract.Connected)
	if !ok || !live.Connected(ctx) {
		return
	}

	name := op.Name()
	var count int64
	if present, err := kv.Exists(ctx, name); err == nil && present {
		if raw, found, err := kv.Get(ctx, name); err == nil && found {
			count, _ = strconv.ParseInt(string(raw), 10, 64)
		}
	}
	fmt.Fprintf(w, "%s was called %d times:\n", name, count)

	inputs, err := kv.LRange(ctx, name+inputsSuffix, 0, -1)
	if err != nil {
		return
	}
	outputs, err := kv.LRange(ctx, name+outputsSuffix, 0, -1)
	if err != nil {
		return
	}

	pairs := min(len(inputs), len(outputs))
	for i := 0; i < pairs; i++ {
		fmt.Fprintf(w, "%s(*%s) -> %s\n", name, inputs[i], outputs[i])
	}
}
