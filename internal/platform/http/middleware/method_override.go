// Package middleware provides net/http middleware that must run before gin routing.
package middleware

import (
	"mime"
	"net/http"
	"strings"
)

// HeaderMethodOverride carries the intended method on a POST request.
const HeaderMethodOverride = "X-Http-Method-Override"

// FormMethodOverride is the form field HTML forms use to tunnel a method.
const FormMethodOverride = "_METHOD"

var overridable = map[string]struct{}{
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// MethodOverride rewrites POST requests to PUT, PATCH or DELETE when asked to
// by the X-Http-Method-Override header or the _METHOD form field.
// gin matches routes before its own middleware runs, so this wraps the engine.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := overrideMethod(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	m := r.Header.Get(HeaderMethodOverride)
	if m == "" && isForm(r) {
		// parsed form values stay on r for the binding that follows
		m = r.PostFormValue(FormMethodOverride)
	}
	m = strings.ToUpper(strings.TrimSpace(m))
	if _, ok := overridable[m]; ok {
		return m
	}
	return ""
}

func isForm(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data"
}
