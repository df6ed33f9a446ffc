package load

import (
	"fmt"
	"os"

	"github.com/phanxgames/coffee/graphics"
)

// Image returns a task that decodes the image file at path and uploads it.
func Image(path string) *Task[*graphics.Image] {
	return New(func() (*graphics.Image, error) {
		return graphics.OpenImage(path)
	})
}

// Font returns a task that parses the font file at path.
func Font(path string) *Task[*graphics.Font] {
	return New(func() (*graphics.Font, error) {
		return graphics.OpenFont(path)
	})
}

// File returns a task that reads the whole file at path.
func File(path string) *Task[[]byte] {
	return New(func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	})
}

// Value returns a task that yields v without doing any work.
func Value[T any](v T) *Task[T] {
	return Sequence(0, func(*Worker) (T, error) { return v, nil })
}
