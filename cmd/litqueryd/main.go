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
	"net/http"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/tylerb/graceful.v1"

	"github.com/getryft/litquery/dialect"
	"github.com/getryft/litquery/internal/api"
	"github.com/getryft/litquery/internal/config"
	"github.com/getryft/litquery/internal/logging"
)

var log = logging.New("litqueryd")

// customized via Makefile, same convention as ryft-server.go's Version/GitHash
var (
	Version = "development"
	GitHash = "unknown"
)

func main() {
	var (
		addr       = kingpin.Flag("address", "Address:port to listen on.").Short('l').Default(":8765").String()
		debug      = kingpin.Flag("debug", "Run in debug mode (more log messages, gin debug router).").Short('d').Bool()
		logLevel   = kingpin.Flag("logging", "Logging level for this process's loggers.").Default("info").String()
		timeout    = kingpin.Flag("shutdown-timeout", "Graceful shutdown timeout.").Default("10s").Duration()
		configFile = kingpin.Flag("config", "YAML file of per-dialect dialect.Rules overrides.").Short('c').String()
		ruleFlags  = kingpin.Flag("rule", "Override a dialect.Rules field on every dialect, KEY=VALUE (repeatable).").StringMap()
	)
	kingpin.Version(fmt.Sprintf("%s (%s)", Version, GitHash))
	kingpin.Parse()

	if err := logging.ApplyDefaults(*logLevel); err != nil {
		kingpin.FatalUsage(err.Error())
	}

	log.WithFields(map[string]interface{}{
		"version":  Version,
		"git-hash": GitHash,
		"address":  *addr,
	}).Info("starting litqueryd...")

	rules, err := buildRules(*configFile, *ruleFlags)
	if err != nil {
		kingpin.FatalUsage(err.Error())
	}

	router := api.NewRouter(*debug, rules)

	ep := &http.Server{Addr: *addr, Handler: router}
	worker := &graceful.Server{
		Timeout: *timeout,
		Server:  ep,
	}

	if err := worker.ListenAndServe(); err != nil {
		log.WithError(err).WithField("address", *addr).Fatal("failed to listen HTTP")
	}

	log.Info("server stopped")
}

// buildRules starts from dialect.DefaultRules for every dialect, then
// layers configFile's per-dialect overrides and finally ruleFlags (a
// single flat override applied identically to every dialect) on top via
// internal/config.MergeOverrides, mirroring rest/server.go's
// base-config-plus-flag-overrides layering.
func buildRules(configFile string, ruleFlags map[string]string) (map[dialect.Tag]*dialect.Rules, error) {
	rules := map[dialect.Tag]*dialect.Rules{
		dialect.PubMed:    dialect.DefaultRules(dialect.PubMed).Clone(),
		dialect.EuropePMC: dialect.DefaultRules(dialect.EuropePMC).Clone(),
		dialect.Cochrane:  dialect.DefaultRules(dialect.Cochrane).Clone(),
	}

	if configFile != "" {
		overrides, err := config.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		for name, override := range overrides {
			tag, ok := dialect.ParseTag(name)
			if !ok {
				return nil, fmt.Errorf("config %q: unknown dialect %q", configFile, name)
			}
			if err := config.MergeOverrides(override, rules[tag]); err != nil {
				return nil, fmt.Errorf("config %q: dialect %q: %s", configFile, name, err)
			}
		}
	}

	if len(ruleFlags) > 0 {
		generic := make(map[string]interface{}, len(ruleFlags))
		for k, v := range ruleFlags {
			generic[k] = v
		}
		for tag, r := range rules {
			if err := config.MergeOverrides(generic, r); err != nil {
				return nil, fmt.Errorf("--rule override for %q: %s", tag, err)
			}
		}
	}

	return rules, nil
}
