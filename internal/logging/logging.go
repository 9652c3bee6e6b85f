/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

// Package logging provides the per-subsystem named loggers used across
// litquery, mirroring the teacher's one-*logrus.Logger-per-package shape
// (search/ryftdec.log, rest.log, rest.jobsLog, ...) but collected behind a
// small registry keyed by tag: SetLevel retargets one logger by tag, the
// way rest/logging.go's DoLoggingLevel endpoint does, and ApplyDefaults
// (behind the commands' single-level "--logging" flag) sets all of them at
// once. No HTTP endpoint for changing levels is exposed.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu       sync.Mutex
	loggers  = map[string]*logrus.Logger{}
	registry = map[string]*logrus.Logger{}
)

// New returns the named logger for tag, creating it on first use. Every
// package that logs holds a package-level entry built from this, e.g.
// `var log = logging.New("query")`.
func New(tag string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	l, ok := loggers[tag]
	if !ok {
		l = logrus.New()
		loggers[tag] = l
		registry[tag] = l
	}
	return l.WithField("tag", tag)
}

// SetLevel changes the level of the named logger, the programmatic
// equivalent of rest/logging.go's setLoggingLevel switch, except driven by
// the tag registry instead of a fixed case list so new packages need no
// change here.
func SetLevel(tag, level string) error {
	mu.Lock()
	l, ok := registry[tag]
	mu.Unlock()
	if !ok {
		return fmt.Errorf("%q is unknown logger name", tag)
	}

	ll, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("failed to parse level: %s", err)
	}
	l.Level = ll
	return nil
}

// Level reports the current level of the named logger.
func Level(tag string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()
	l, ok := registry[tag]
	if !ok {
		return "", false
	}
	return l.Level.String(), true
}

// Levels reports the current level of every registered logger, the shape
// rest/logging.go's DoLoggingLevel returns as its info map.
func Levels() map[string]string {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]string, len(registry))
	for tag, l := range registry {
		out[tag] = l.Level.String()
	}
	return out
}

// ApplyDefaults sets every currently-registered logger to level, the
// equivalent of the teacher's makeDefaultLoggingOptions helper.
func ApplyDefaults(level string) error {
	ll, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("failed to parse level: %s", err)
	}
	mu.Lock()
	defer mu.Unlock()
	for _, l := range registry {
		l.Level = ll
	}
	return nil
}
