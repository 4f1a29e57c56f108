package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// MaxMessageSize bounds one protocol line. Resolved trees serialize
// roughly an order of magnitude larger than their source text, so this
// is well above the default scanner buffer.
const MaxMessageSize = 16 * 1024 * 1024

// readMessage reads the next newline-delimited message from the input
// stream. Returns io.EOF when the host closes the stream.
func (s *Server) readMessage() (*Message, error) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.stdin)
		s.scanner.Buffer(make([]byte, 64*1024), MaxMessageSize)
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("read request: %w", err)
		}
		return nil, io.EOF
	}

	line := s.scanner.Bytes()
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &msg, nil
}

// writeMessage writes one message as a single output line.
func (s *Server) writeMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	if _, err := fmt.Fprintf(s.stdout, "%s\n", data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
