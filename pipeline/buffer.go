package pipeline

import (
	"fmt"
	"sync"
)

// Buffer is a Sink implementation intended for testing; everything published
// is stored internally.
type Buffer struct {
	mu       sync.Mutex
	Env      map[string]string
	Outputs  map[string]string
	Masked   []string
	Messages []string
}

func NewBuffer() *Buffer {
	return &Buffer{
		Env:      map[string]string{},
		Outputs:  map[string]string{},
		Masked:   []string{},
		Messages: []string{},
	}
}

func (b *Buffer) ExportVariable(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Env[name] = value
}

func (b *Buffer) SetOutput(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Outputs[name] = value
}

func (b *Buffer) AddMask(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Masked = append(b.Masked, value)
}

func (b *Buffer) Info(format string, v ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Messages = append(b.Messages, "[info] "+fmt.Sprintf(format, v...))
}

func (b *Buffer) Warning(format string, v ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Messages = append(b.Messages, "[warning] "+fmt.Sprintf(format, v...))
}
