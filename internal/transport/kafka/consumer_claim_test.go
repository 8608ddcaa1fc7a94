package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	testlog "trucking-planner/internal/testutil"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked int
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(*sarama.ConsumerMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked++
}

func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "" }
func (s *fakeSession) GenerationID() int32                      { return 0 }

func (s *fakeSession) MarkedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marked
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Topic() string              { return "t" }
func (c fakeClaim) Partition() int32           { return 0 }
func (c fakeClaim) InitialOffset() int64       { return 0 }
func (c fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.ch
}

func claimWith(payloads ...[]byte) fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(payloads))
	for _, p := range payloads {
		ch <- &sarama.ConsumerMessage{Value: p}
	}
	close(ch)
	return fakeClaim{ch: ch}
}

func TestConsumeClaim_EmptyPayload_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, []byte) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith([]byte{}))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka empty message"))
}

func TestConsumeClaim_PermanentError_SkipsButMarks(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, []byte) error {
			return Permanent(errors.New("bad vendor"))
		},
	}
	h := &groupHandler{c: c}

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith([]byte(`{"vendor":"?"}`)))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka handle failed, skipping message"))
}

func TestConsumeClaim_TransientError_Retries(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	sentinel := errors.New("store down")
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, []byte) error {
			return sentinel
		},
	}
	h := &groupHandler{c: c}

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith([]byte(`{"vendor":"KAMBING"}`)))
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 0, sess.MarkedCount())
}

func TestConsumeClaim_Success_Marks(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	var got []byte
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(_ context.Context, payload []byte) error {
			got = payload
			return nil
		},
	}
	h := &groupHandler{c: c}

	sess := &fakeSession{ctx: context.Background()}
	msg := []byte(`{"vendor":"KAMBING","date":"2025-03-10","slots_20":5}`)
	err := h.ConsumeClaim(sess, claimWith(msg))
	require.NoError(t, err)
	require.Equal(t, msg, got)
	require.Equal(t, 1, sess.MarkedCount())
}
