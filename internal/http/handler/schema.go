package handler

import (
	"maps"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
)

// SchemaHandler serves the JSON Schema of each request body.
type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

func NewSchemaHandler() *SchemaHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	return &SchemaHandler{schemas: map[string]*jsonschema.Schema{
		"account-create": reflector.Reflect(&dto.CreateAccountRequest{}),
		"account-update": reflector.Reflect(&dto.UpdateAccountRequest{}),
		"organization":   reflector.Reflect(&dto.OrganizationRequest{}),
		"rating":         reflector.Reflect(&dto.RatingRequest{}),
		"login":          reflector.Reflect(&dto.LoginRequest{}),
	}}
}

func (h *SchemaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemas": slices.Sorted(maps.Keys(h.schemas))})
}

func (h *SchemaHandler) Get(c *gin.Context) {
	schema, ok := h.schemas[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown schema"})
		return
	}
	c.JSON(http.StatusOK, schema)
}
