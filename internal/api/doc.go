// Package api provides HTTP handlers for the catalog API.
package api
