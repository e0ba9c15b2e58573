// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of ISLGEN.
//
//  ISLGEN is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ISLGEN is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ISLGEN.  If not, see <https://www.gnu.org/licenses/>.

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{
		"listenAddress": "127.0.0.1",
		"listenPort": 8085,
		"logLevel": "debug",
		"media": {"classesDir": "/tmp/signs"}
	}`), 0644))
	conf := LoadConfig(path)
	assert.Equal(t, "127.0.0.1", conf.ListenAddress)
	assert.Equal(t, 8085, conf.ListenPort)
	assert.True(t, conf.IsDebugMode())
	assert.Equal(t, "/tmp/signs", conf.Media.ClassesDir)
}

func TestValidateAndDefaults(t *testing.T) {
	conf := &Conf{ListenAddress: "127.0.0.1"}
	ValidateAndDefaults(conf)
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, "http://127.0.0.1", conf.PublicURL)
	assert.Equal(t, dfltTimeZone, conf.TimeZone)
	assert.NotNil(t, conf.TimezoneLocation())
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	conf := &Conf{
		ServerWriteTimeoutSecs: 60,
		PublicURL:              "https://islgen.example.org",
		TimeZone:               "Europe/Prague",
	}
	ValidateAndDefaults(conf)
	assert.Equal(t, 60, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, "https://islgen.example.org", conf.PublicURL)
	assert.Equal(t, "Europe/Prague", conf.TimeZone)
}
