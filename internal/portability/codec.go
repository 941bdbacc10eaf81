// Package portability provides the import/export codecs for the task
// sequence. The JSON shape matches the durable tasks record exactly, so an
// exported document can be dropped in place of the stored one.
package portability

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orbitlabs/missionctl/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format names a portable document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, accepting common aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (use json or yaml)", s)
	}
}

// CodecFor returns the codec for the given format.
func CodecFor(format Format) domain.TaskCodec {
	if format == FormatYAML {
		return YAMLCodec{}
	}
	return JSONCodec{}
}

// JSONCodec encodes the task sequence as a pretty-printed JSON array.
type JSONCodec struct{}

// Ensure JSONCodec implements domain.TaskCodec.
var _ domain.TaskCodec = JSONCodec{}

// Encode serializes the task sequence pretty-printed.
func (JSONCodec) Encode(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON task sequence. Unknown fields are ignored for
// forward compatibility; a document that is not a sequence of task-shaped
// records is an error.
func (JSONCodec) Decode(data []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return tasks, nil
}

// YAMLCodec encodes the task sequence as a YAML document.
type YAMLCodec struct{}

// Ensure YAMLCodec implements domain.TaskCodec.
var _ domain.TaskCodec = YAMLCodec{}

// Encode serializes the task sequence as YAML.
func (YAMLCodec) Encode(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Decode parses a YAML task sequence.
func (YAMLCodec) Decode(data []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return tasks, nil
}
