// Package protocol serves the analyzer over newline-delimited JSON-RPC
// 2.0 on stdio. The host sends resolved units for analysis and receives
// replacement diagnostic sets; unexpected pass failures surface as
// plugin.error notifications instead of request errors.
package protocol

import (
	"encoding/json"

	"arblint/internal/diag"
)

// Version is the JSON-RPC protocol version tag.
const Version = "2.0"

// Request methods and notification names.
const (
	MethodInitialize     = "initialize"
	MethodAnalyze        = "analysis.analyze"
	MethodInvalidateRoot = "analysis.invalidateRoot"
	MethodShutdown       = "shutdown"

	NotifyPluginError = "plugin.error"
)

// Standard JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Message is one JSON-RPC 2.0 message. Params stays raw until the
// handler for the method decodes it.
type Message struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// IsNotification reports whether the message expects no response.
func (m *Message) IsNotification() bool {
	return m.Method != "" && m.ID == nil
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewResult builds a response carrying result for the request id.
func NewResult(id, result any) *Message {
	return &Message{Jsonrpc: Version, ID: id, Result: result}
}

// NewError builds an error response for the request id.
func NewError(id any, code int, message string) *Message {
	return &Message{Jsonrpc: Version, ID: id, Error: &Error{Code: code, Message: message}}
}

// NewNotification builds a server-initiated notification.
func NewNotification(method string, params any) *Message {
	raw, err := json.Marshal(params)
	if err != nil {
		raw = []byte("{}")
	}
	return &Message{Jsonrpc: Version, Method: method, Params: raw}
}

// InitializeResult identifies the analyzer to the host.
type InitializeResult struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	SessionID string `json:"sessionId"`
}

// AnalyzeParams carries one unit to analyze. Unit stays raw; the unit
// decoder owns its schema.
type AnalyzeParams struct {
	Root string          `json:"root"`
	Unit json.RawMessage `json:"unit"`
}

// AnalyzeResult is the replacement diagnostic set for the unit.
type AnalyzeResult struct {
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
}

// InvalidateRootParams names a root whose cached configuration and
// extraction target must be re-read.
type InvalidateRootParams struct {
	Root string `json:"root"`
}

// PluginErrorParams describes a non-fatal analyzer failure.
type PluginErrorParams struct {
	Message   string `json:"message"`
	Trace     string `json:"trace,omitempty"`
	SessionID string `json:"sessionId"`
	IsFatal   bool   `json:"isFatal"`
}
