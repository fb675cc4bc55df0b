/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tomoncle/crudbase"
	"github.com/tomoncle/crudbase/types"
)

// IDParser converts a path parameter into an entity id.
type IDParser[ID comparable] func(string) (ID, error)

func ParseIntID(s string) (int, error) {
	return strconv.Atoi(s)
}

func ParseInt64ID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// DeleteRequest is the body of a bulk delete.
type DeleteRequest[ID comparable] struct {
	IDs []ID `json:"ids"`
}

// Controller serves a crudbase.Service as a REST resource.
type Controller[T any, ID comparable] struct {
	service crudbase.Service[T, ID]
	parseID IDParser[ID]
}

func NewController[T any, ID comparable](service crudbase.Service[T, ID], parseID IDParser[ID]) *Controller[T, ID] {
	return &Controller[T, ID]{service: service, parseID: parseID}
}

// Register mounts the resource routes on r.
func (h *Controller[T, ID]) Register(r fiber.Router) {
	r.Get("/", h.Page)
	r.Post("/", h.Create)
	r.Post("/delete", h.DeleteAll)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *Controller[T, ID]) id(c *fiber.Ctx) (ID, error) {
	id, err := h.parseID(c.Params("id"))
	if err != nil {
		return id, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Page lists one page, selected with the page and page_size query
// parameters.
func (h *Controller[T, ID]) Page(c *fiber.Ctx) error {
	req := types.NewDefaultPageRequest(
		c.QueryInt("page", types.DefaultPage),
		c.QueryInt("page_size", types.DefaultPageSize),
	)
	page, err := h.service.Page(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *Controller[T, ID]) Get(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return err
	}
	model, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(model)
}

func (h *Controller[T, ID]) Create(c *fiber.Ctx) error {
	model := new(T)
	if err := c.BodyParser(model); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	saved, err := h.service.Insert(c.UserContext(), model)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Controller[T, ID]) Update(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return err
	}
	model := new(T)
	if err := c.BodyParser(model); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.service.Update(c.UserContext(), id, model); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Controller[T, ID]) Delete(c *fiber.Ctx) error {
	id, err := h.id(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Controller[T, ID]) DeleteAll(c *fiber.Ctx) error {
	var req DeleteRequest[ID]
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.service.DeleteAll(c.UserContext(), req.IDs); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
