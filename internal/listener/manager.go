package listener

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// Core is the session service surface the transports drive.
type Core interface {
	Connect(handle string, conn game.Conn, enc message.Encoder) error
	Receive(handle, text string) error
	Disconnect(handle string) error
}

// connWriter adapts a transport stream to the outbound-only connection
// the game layer writes through.
type connWriter struct {
	w io.Writer
}

func (c *connWriter) Send(data []byte) error {
	_, err := c.w.Write(data)
	return err
}

// ConnectionManager mints a handle for each accepted connection and pumps
// its lines into the core until the stream or the context ends. The
// encoder is shared across connections; encoders are stateless.
type ConnectionManager struct {
	core Core
	enc  message.Encoder
}

func NewConnectionManager(core Core, enc message.Encoder) *ConnectionManager {
	return &ConnectionManager{
		core: core,
		enc:  enc,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	handle := uuid.NewString()

	if err := m.core.Connect(handle, &connWriter{w: conn}, m.enc); err != nil {
		slog.WarnContext(ctx, "admitting connection", "handle", handle, "error", err)
		return
	}
	defer func() {
		if err := m.core.Disconnect(handle); err != nil {
			slog.WarnContext(ctx, "closing session", "handle", handle, "error", err)
		}
	}()

	// Read input lines into a channel so the loop below can also watch
	// for shutdown.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case line, ok := <-inputChan:
			if !ok {
				// Input channel closed (connection lost).
				select {
				case err := <-inputErrChan:
					if err != nil {
						slog.WarnContext(ctx, "reading connection", "handle", handle, "error", err)
					}
				default:
				}
				return
			}

			if err := m.core.Receive(handle, strings.TrimSpace(line)); err != nil {
				slog.WarnContext(ctx, "handling input", "handle", handle, "error", err)
				return
			}
		}
	}
}
