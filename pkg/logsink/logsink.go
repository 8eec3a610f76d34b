// Package logsink пишет строки заданий в append-only лог-файлы
// в формате "[YYYY-MM-DD HH:MM:SS] <message>".
package logsink

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// TimeLayout — формат таймстемпа в строках лога.
const TimeLayout = "2006-01-02 15:04:05"

// Sink — именованный append-only лог одного задания.
type Sink struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func New(path string) *Sink {
	return &Sink{
		path: path,
		now:  time.Now,
	}
}

// Append дописывает одну строку с таймстемпом.
func (s *Sink) Append(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", s.now().Format(TimeLayout), message)
	if _, err := f.WriteString(line); err != nil {
		return err
	}

	return nil
}

// Appendf дописывает отформатированную строку с таймстемпом.
func (s *Sink) Appendf(format string, args ...any) error {
	return s.Append(fmt.Sprintf(format, args...))
}
