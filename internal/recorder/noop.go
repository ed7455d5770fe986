package recorder

// NoopRecorder is a no-op implementation used when no log target is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRound(_ *RoundRecord) error        { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *SnapshotRecord) error  { return nil }
func (n *NoopRecorder) History(_ int) ([]SnapshotRecord, error) { return nil, nil }
func (n *NoopRecorder) Close() error                            { return nil }
