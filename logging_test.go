package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/natefinch/lumberjack.v2"
	"gotest.tools/assert"
)

func TestSetupLoggingFile(t *testing.T) {
	defer setupLogging(defaultSettings(), true)

	s := defaultSettings()
	fname := filepath.Join(t.TempDir(), "fencebox.log")
	s.settings[sLogFile] = fname
	s.settings[sLogCompress] = false
	s.settings[sLogMaxBackups] = 5

	closer := setupLogging(s, false)
	lj, ok := closer.(*lumberjack.Logger)
	assert.Assert(t, ok)
	assert.Equal(t, lj.Filename, fname)
	assert.Equal(t, lj.Compress, false)
	assert.Equal(t, lj.MaxBackups, 5)
	assert.Equal(t, lj.MaxSize, 10)

	log.Println("to the file")
	assert.NilError(t, closer.Close())
	data, err := os.ReadFile(fname)
	assert.NilError(t, err)
	assert.Assert(t, len(data) > 0)
}

func TestSetupLoggingNoFile(t *testing.T) {
	defer setupLogging(defaultSettings(), true)

	assert.Assert(t, setupLogging(defaultSettings(), false) == nil)
	assert.Equal(t, defaultSettings().GetBool(sLogCompress), true)
}
