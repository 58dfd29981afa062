// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// probedMethods are the methods offered in the Allow header.
var probedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// chi calls it when the path matches a registered route but the method does
// not. The handler answers 405 with a JSON message and an Allow header listing
// the methods registered for routes whose pattern matches the path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// allowedMethods walks the full route tree. Mounted subrouters are expanded
// by chi.Walk, so "/api/vault" is compared with "/api/vault/" and
// "/api/vault/{id}" instead of the catch-all mount pattern.
func allowedMethods(router chi.Routes, path string) []string {
	seen := make(map[string]bool)
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if routeMatches(route, path) {
			seen[method] = true
		}
		return nil
	})

	var allowed []string
	for _, method := range probedMethods {
		if seen[method] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// routeMatches reports whether a chi pattern matches path. A {param} matches
// one non-empty segment, a trailing * matches the rest, and trailing slashes
// are ignored.
func routeMatches(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range want {
		if seg == "*" {
			return true
		}
		if i >= len(got) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return len(want) == len(got)
}
