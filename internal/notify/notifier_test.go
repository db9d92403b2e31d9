package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures sent alerts and can be told to fail.
type recordingNotifier struct {
	sent    []AlertPayload
	batches [][]AlertPayload
	err     error
}

func (r *recordingNotifier) SendAlert(_ context.Context, alert *AlertPayload) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, *alert)
	return nil
}

func (r *recordingNotifier) SendBatchAlert(_ context.Context, alerts []AlertPayload, _ string) error {
	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, alerts)
	return nil
}

func TestMulti_SendAlert_AllBackends(t *testing.T) {
	t.Parallel()

	a := &recordingNotifier{}
	b := &recordingNotifier{}
	m := NewMulti(a, b)

	alert := testAlert(64)
	require.NoError(t, m.SendAlert(context.Background(), &alert))

	require.Len(t, a.sent, 1)
	require.Len(t, b.sent, 1)
	assert.Equal(t, alert.Vehicle, a.sent[0].Vehicle)
}

func TestMulti_SendAlert_OneBackendFails(t *testing.T) {
	t.Parallel()

	failing := &recordingNotifier{err: errors.New("discord down")}
	ok := &recordingNotifier{}
	m := NewMulti(failing, ok)

	alert := testAlert(64)
	err := m.SendAlert(context.Background(), &alert)

	// The failure surfaces but the healthy backend still delivered.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discord down")
	assert.Len(t, ok.sent, 1)
}

func TestMulti_SendBatchAlert(t *testing.T) {
	t.Parallel()

	a := &recordingNotifier{}
	b := &recordingNotifier{}
	m := NewMulti(a, b)

	alerts := []AlertPayload{testAlert(64), testAlert(48)}
	require.NoError(t, m.SendBatchAlert(context.Background(), alerts, "stale sweep"))

	require.Len(t, a.batches, 1)
	require.Len(t, b.batches, 1)
	assert.Len(t, a.batches[0], 2)
}

func TestMulti_Empty(t *testing.T) {
	t.Parallel()

	m := NewMulti()
	alert := testAlert(64)
	require.NoError(t, m.SendAlert(context.Background(), &alert))
	require.NoError(t, m.SendBatchAlert(context.Background(), nil, ""))
}

var _ Notifier = (*Multi)(nil)
