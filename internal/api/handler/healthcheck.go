package handler

import (
	"net/http"
)

const apiVersion = "0.1.0"

func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"message": "Media Planner API is running",
			"version": apiVersion,
		})
	})
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
	})
}
