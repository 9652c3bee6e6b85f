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

// Package api is the thin gin wrapper spec.md §1 names as an external
// collaborator: three routes over the pure query/dialect packages, no
// business logic. Modeled on rest/server.go's router setup and
// rest/error.go's panic-recovery middleware.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/getryft/litquery/dialect"
	"github.com/getryft/litquery/internal/logging"
	"github.com/getryft/litquery/query"
)

var log = logging.New("api")

// NewRouter builds the gin engine exposing POST /parse, POST /validate and
// POST /compile/:dialect. rules supplies the per-dialect syntax-rule
// resource /compile uses; a nil or missing entry falls back to
// dialect.DefaultRules for that tag, so callers with no --config/--rule
// overrides can pass nil.
func NewRouter(debug bool, rules map[dialect.Tag]*dialect.Rules) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestLogger())
	router.Use(gin.Recovery())

	router.POST("/parse", doParse)
	router.POST("/validate", doValidate)
	router.POST("/compile/:dialect", doCompile(rules))

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		log.WithFields(map[string]interface{}{
			"status": ctx.Writer.Status(),
			"client": ctx.ClientIP(),
		}).Infof("%s %s", ctx.Request.Method, ctx.Request.URL.Path)
	}
}

type queryRequest struct {
	Query string `json:"query" binding:"required"`
}

func doParse(ctx *gin.Context) {
	var req queryRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := query.Parse(req.Query)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, errorBody(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"format":    result.Format.String(),
		"canonical": result.Canonical,
	})
}

func doValidate(ctx *gin.Context) {
	var req queryRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := query.Validate(req.Query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, errorBody(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func doCompile(rules map[dialect.Tag]*dialect.Rules) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tag, ok := dialect.ParseTag(ctx.Param("dialect"))
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown dialect"})
			return
		}

		var req struct {
			Canonical string `json:"canonical" binding:"required"`
		}
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		r := rules[tag]
		if r == nil {
			r = dialect.DefaultRules(tag)
		}

		compiled, warnings, err := dialect.Compile(req.Canonical, tag, r)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, errorBody(err))
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"compiled": compiled,
			"warnings": warnings,
		})
	}
}

func errorBody(err *query.Error) gin.H {
	return gin.H{
		"kind":    err.Kind.String(),
		"message": err.Error(),
	}
}
