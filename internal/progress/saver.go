// internal/progress/saver.go
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	saveTopic  = "progress.save"
	metaKeySeq = "seq"
)

// Saver persists progress snapshots off the frame goroutine. Snapshots are
// published onto an in-memory watermill channel and written by a single
// subscriber; a snapshot older than the last written one is dropped.
type Saver struct {
	store   *Store
	pubSub  *gochannel.GoChannel
	seq     atomic.Uint64
	pending sync.WaitGroup
	done    chan struct{}

	lastWritten uint64 // только горутина записи
	closeOnce   sync.Once
}

// NewSaver starts the writer goroutine.
func NewSaver(store *Store) (*Saver, error) {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 16},
		watermill.NewStdLogger(false, false),
	)

	messages, err := pubSub.Subscribe(context.Background(), saveTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", saveTopic, err)
	}

	s := &Saver{
		store:  store,
		pubSub: pubSub,
		done:   make(chan struct{}),
	}
	go s.run(messages)
	return s, nil
}

// Save snapshots p and queues it for writing. It never blocks on I/O.
func (s *Saver) Save(p *GameProgress) {
	data, err := Encode(p)
	if err != nil {
		slog.Error("Failed to encode progress", "error", err)
		return
	}

	seq := s.seq.Add(1)
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(metaKeySeq, strconv.FormatUint(seq, 10))

	s.pending.Add(1)
	if err := s.pubSub.Publish(saveTopic, msg); err != nil {
		s.pending.Done()
		slog.Error("Failed to queue progress save", "seq", seq, "error", err)
	}
}

func (s *Saver) run(messages <-chan *message.Message) {
	defer close(s.done)
	for msg := range messages {
		s.write(msg)
		msg.Ack()
		s.pending.Done()
	}
	slog.Debug("Progress saver stopped", "last_seq", s.lastWritten)
}

func (s *Saver) write(msg *message.Message) {
	seq, err := strconv.ParseUint(msg.Metadata.Get(metaKeySeq), 10, 64)
	if err != nil {
		slog.Error("Progress snapshot without sequence", "msg_id", msg.UUID, "error", err)
		return
	}
	if seq <= s.lastWritten {
		slog.Debug("Skipping stale progress snapshot", "seq", seq, "last", s.lastWritten)
		return
	}

	if err := s.store.WriteRaw(msg.Payload); err != nil {
		slog.Error("Failed to save progress", "seq", seq, "path", s.store.Path(), "error", err)
		return
	}
	s.lastWritten = seq
}

// Flush waits until every queued snapshot has been handled.
func (s *Saver) Flush() {
	s.pending.Wait()
}

// Close flushes pending snapshots and stops the writer.
func (s *Saver) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.Flush()
		err = s.pubSub.Close()
		<-s.done
	})
	return err
}
