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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/getryft/litquery/dialect"
	"github.com/getryft/litquery/internal/logging"
	"github.com/getryft/litquery/internal/preprocess"
	"github.com/getryft/litquery/internal/watch"
	"github.com/getryft/litquery/query"
)

var log = logging.New("cli")

// customized via Makefile, same convention as ryft-server.go's Version/GitHash
var (
	Version = "development"
	GitHash = "unknown"
)

func main() {
	var (
		queryArg   = kingpin.Arg("query", "Query text. Omit to read from --file or stdin.").String()
		fileFlag   = kingpin.Flag("file", "Read the query from a file instead of the argument.").Short('f').String()
		dialectArg = kingpin.Flag("dialect", "Compile the canonical form for a target dialect: PubMed, EuropePMC, Cochrane.").Short('d').String()
		loggingArg = kingpin.Flag("logging", "Logging level for every logger in the process.").Default("info").String()
		watchFlag  = kingpin.Flag("watch", "Re-run on every change to --file instead of exiting after one pass.").Short('w').Bool()
	)
	kingpin.Version(fmt.Sprintf("%s (%s)", Version, GitHash))
	kingpin.Parse()

	if err := logging.ApplyDefaults(*loggingArg); err != nil {
		kingpin.FatalUsage(err.Error())
	}

	if *watchFlag && *fileFlag == "" {
		kingpin.FatalUsage("--watch requires --file")
	}

	process(*queryArg, *fileFlag, *dialectArg, !*watchFlag)

	if *watchFlag {
		runWatch(*fileFlag, *dialectArg)
	}
}

// process runs one parse/compile pass and prints its result, exactly the
// work main did before --watch existed. exitOnError preserves that
// original one-shot behavior (a bad query is fatal); --watch passes
// false so a single malformed edit is reported and re-processing
// continues on the next change instead of killing the process.
func process(queryArg, fileFlag, dialectArg string, exitOnError bool) {
	lines, err := sourceLines(queryArg, fileFlag)
	if err != nil {
		log.WithError(err).Fatal("failed to read query")
	}

	result, perr := query.ParseLines(lines)
	if perr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", perr.Kind, perr.Error())
		if exitOnError {
			os.Exit(1)
		}
		return
	}

	if dialectArg == "" {
		fmt.Println(result.Canonical)
		return
	}

	tag, ok := dialect.ParseTag(dialectArg)
	if !ok {
		kingpin.FatalUsage("unknown dialect %q", dialectArg)
	}

	compiled, warnings, cerr := dialect.Compile(result.Canonical, tag, dialect.DefaultRules(tag))
	if cerr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cerr.Kind, cerr.Error())
		if exitOnError {
			os.Exit(1)
		}
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Println(compiled)
}

// runWatch keeps the CLI alive, re-running process on every write to
// fileFlag until interrupted — the cmd/litquery analogue of the teacher's
// fsobserver-driven reindex-on-change loop (fsobserver/fsobserver.go,
// ryft-server/streaming.go), narrowed from reindexing a search catalog to
// re-parsing/re-compiling one query file.
func runWatch(fileFlag, dialectArg string) {
	stop := make(chan struct{})
	defer close(stop)

	onChange := func() {
		log.WithField("file", fileFlag).Info("file changed, re-processing")
		process("", fileFlag, dialectArg, false)
	}

	if err := watch.File(fileFlag, onChange, stop); err != nil {
		log.WithError(err).Fatal("failed to watch file")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	log.Info("stopped watching")
}

func sourceLines(queryArg, fileFlag string) ([]string, error) {
	switch {
	case queryArg != "":
		return query.Preprocess(queryArg), nil
	case fileFlag != "":
		return preprocess.FromFile(fileFlag)
	default:
		return preprocess.FromStdin()
	}
}
