// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZap(t *testing.T) {
	t.Run("writes json entries at and above its level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)

		logger.Debug("debug")
		logger.Infof("info %d", 1)
		logger.Warnf("full %s", "mailbox")
		logger.Error("advice failed")

		entries := decode(t, buffer)
		require.Len(t, entries, 2)
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, "full mailbox", entries[0]["msg"])
		assert.Equal(t, "error", entries[1]["level"])
		assert.Equal(t, "advice failed", entries[1]["msg"])
		assert.Contains(t, entries[1], "stacktrace")
		assert.Equal(t, WarningLevel, logger.LogLevel())
	})
	t.Run("debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		logger.Debugf("slot %v", false)
		logger.Info("info")
		logger.Warn("warn")
		logger.Errorf("error %s", "x")

		entries := decode(t, buffer)
		require.Len(t, entries, 4)
		assert.Equal(t, "slot false", entries[0]["msg"])
		assert.Equal(t, DebugLevel, logger.LogLevel())
	})
	t.Run("with adds fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer).With("actor.path", "/user/a", 42, "skipped", "dangling")
		logger.Info("registered")

		entries := decode(t, buffer)
		require.Len(t, entries, 1)
		assert.Equal(t, "/user/a", entries[0]["actor.path"])
		assert.NotContains(t, entries[0], "dangling")
	})
	t.Run("with without fields returns the same logger", func(t *testing.T) {
		logger := NewZap(InfoLevel, io.Discard)
		assert.Same(t, logger, logger.With())
	})
	t.Run("outputs", func(t *testing.T) {
		logger := NewZap(ErrorLevel)
		assert.Equal(t, []io.Writer{os.Stdout}, logger.LogOutput())
		assert.Equal(t, ErrorLevel, logger.LogLevel())
		assert.NoError(t, logger.Flush())
	})
	t.Run("flush syncs files", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "agent.log"))
		require.NoError(t, err)

		logger := NewZap(InfoLevel, file)
		logger.Info("hello")
		require.NoError(t, logger.Flush())

		require.NoError(t, file.Close())
		assert.Error(t, logger.Flush())

		content, err := os.ReadFile(file.Name())
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"hello"`)
	})
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("a")
	logger.Debugf("%s", "a")
	logger.Info("a")
	logger.Infof("%s", "a")
	logger.Warn("a")
	logger.Warnf("%s", "a")
	logger.Error("a")
	logger.Errorf("%s", "a")

	assert.Equal(t, InfoLevel, logger.LogLevel())
	assert.Equal(t, []io.Writer{io.Discard}, logger.LogOutput())
	assert.Equal(t, DiscardLogger, logger.With("k", "v"))
	assert.NoError(t, logger.Flush())
}
