package schema

// StoreStatus represents the status of the backing store.
type StoreStatus struct {
	Addr       string            `json:"addr"`
	DB         int               `json:"db"`
	Connected  bool              `json:"connected"`
	Operations []OperationStatus `json:"operations"`
}

// OperationStatus summarizes the recorded instrumentation for one operation.
type OperationStatus struct {
	Operation string `json:"operation"`
	Calls     int64  `json:"calls"`
	Inputs    int64  `json:"inputs"`
	Outputs   int64  `json:"outputs"`

	// Drift is true when the counter and the history lists disagree.
	// The write path is not atomic as a whole, so concurrent callers can
	// leave the counter ahead of the lists.
	Drift bool `json:"drift"`
}
