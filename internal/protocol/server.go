package protocol

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"arblint/internal/dart"
	"arblint/internal/diag"
	"arblint/internal/engine"
)

// Server handles one host connection over stdio. Requests are processed
// serially in arrival order; per-file scheduling and debouncing belong
// to the host.
type Server struct {
	engine  *engine.Engine
	version string
	session string

	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	log     zerolog.Logger

	quitting bool
}

// NewServer wires an engine to stdio.
func NewServer(eng *engine.Engine, version string, log zerolog.Logger) *Server {
	return &Server{
		engine:  eng,
		version: version,
		session: uuid.NewString(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		log:     log.With().Str("component", "serve").Logger(),
	}
}

// SetStdin sets the input stream, for tests.
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil
}

// SetStdout sets the output stream, for tests.
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}

// Run processes messages until the host sends shutdown or closes the
// stream.
func (s *Server) Run() error {
	s.log.Info().Str("session", s.session).Str("version", s.version).Msg("analyzer serving")

	for {
		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Info().Msg("host closed the stream")
				return nil
			}
			s.log.Warn().Err(err).Msg("dropping unreadable message")
			continue
		}

		if resp := s.handle(msg); resp != nil {
			if err := s.writeMessage(resp); err != nil {
				s.log.Error().Err(err).Msg("cannot write response")
			}
		}
		if s.quitting {
			s.log.Info().Msg("shutdown requested")
			return nil
		}
	}
}

func (s *Server) handle(msg *Message) *Message {
	switch msg.Method {
	case MethodInitialize:
		return NewResult(msg.ID, InitializeResult{
			Name:      "arblint",
			Version:   s.version,
			SessionID: s.session,
		})

	case MethodAnalyze:
		return s.handleAnalyze(msg)

	case MethodInvalidateRoot:
		var p InvalidateRootParams
		if err := json.Unmarshal(msg.Params, &p); err != nil || p.Root == "" {
			return NewError(msg.ID, CodeInvalidParams, "invalidateRoot requires a root path")
		}
		s.engine.InvalidateRoot(p.Root)
		return NewResult(msg.ID, struct{}{})

	case MethodShutdown:
		s.quitting = true
		return NewResult(msg.ID, struct{}{})

	case "":
		return NewError(msg.ID, CodeInvalidRequest, "message has no method")

	default:
		if msg.IsNotification() {
			s.log.Debug().Str("method", msg.Method).Msg("ignoring notification")
			return nil
		}
		return NewError(msg.ID, CodeMethodNotFound, "unknown method "+msg.Method)
	}
}

func (s *Server) handleAnalyze(msg *Message) *Message {
	var p AnalyzeParams
	if err := json.Unmarshal(msg.Params, &p); err != nil {
		return NewError(msg.ID, CodeInvalidParams, "analyze: "+err.Error())
	}
	if p.Root == "" || len(p.Unit) == 0 {
		return NewError(msg.ID, CodeInvalidParams, "analyze requires root and unit")
	}

	unit, err := dart.DecodeUnit(p.Unit)
	if err != nil {
		return NewError(msg.ID, CodeInvalidParams, err.Error())
	}

	diags, err := s.engine.Analyze(p.Root, unit)
	if err != nil {
		s.notifyPassFailure(err)
	}
	if diags == nil {
		diags = []diag.Diagnostic{}
	}
	return NewResult(msg.ID, AnalyzeResult{Diagnostics: diags})
}

// notifyPassFailure reports a failed pass out of band. The analyze
// request still answers normally with an empty diagnostic set.
func (s *Server) notifyPassFailure(err error) {
	p := PluginErrorParams{Message: err.Error(), SessionID: s.session}
	var pe *engine.PassError
	if errors.As(err, &pe) {
		p.Trace = pe.Stack
	}
	if werr := s.writeMessage(NewNotification(NotifyPluginError, p)); werr != nil {
		s.log.Error().Err(werr).Msg("cannot send plugin.error notification")
	}
}
