/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		" DEBUG ": logrus.DebugLevel,
		"":        logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "input %q", in)
	}
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("LEVELTEST")
	assert.True(t, SetLoggerLevel("LEVELTEST", "error"))
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.False(t, SetLoggerLevel("MISSING", "debug"))
}

func TestJSONLogFormatter(t *testing.T) {
	f := &JSONLogFormatter{LoggerName: "API"}
	entry := &logrus.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "request failed",
		Data: logrus.Fields{
			"request_id": "abc",
			"status":     404,
			"error":      errors.New("boom"),
		},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &rec))
	assert.Equal(t, "warning", rec["level"])
	assert.Equal(t, "API", rec["logger"])
	assert.Equal(t, "abc", rec["request_id"])
	assert.EqualValues(t, 404, rec["status"])
	assert.Equal(t, "boom", rec["fields"].(map[string]interface{})["error"])
	assert.Equal(t, "2025-01-02 03:04:05.000", rec["time"])
}

func TestLog4jColorFormatterPlain(t *testing.T) {
	f := &Log4jColorFormatter{LoggerName: "CRUD", NameWidth: 6, DisableColors: true}
	entry := &logrus.Entry{
		Time:    time.Now(),
		Level:   logrus.InfoLevel,
		Message: "inserted",
		Data:    logrus.Fields{"b": 2, "a": 1},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	line := string(out)
	assert.Contains(t, line, "   INFO")
	assert.Contains(t, line, "  CRUD : inserted a=1 b=2\n")
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CRUDBASE_TEST_BOOL", "true")
	t.Setenv("CRUDBASE_TEST_DUR", "3s")
	t.Setenv("CRUDBASE_TEST_BAD", "nope")

	assert.True(t, EnvDefaultBool("CRUDBASE_TEST_BOOL", false))
	assert.True(t, EnvDefaultBool("CRUDBASE_TEST_BAD", true))
	assert.Equal(t, 3*time.Second, EnvDefaultDuration("CRUDBASE_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, EnvDefaultDuration("CRUDBASE_TEST_BAD", time.Second))
	assert.Equal(t, "x", EnvDefaultString("CRUDBASE_TEST_UNSET", "x"))
}
