// Package api exposes CRUD services over HTTP with fiber.
package api
