package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// ItemHandler handles catalog item API endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List returns the items of a category and its whole subtree.
// GET /items?category=<name>
func (h *ItemHandler) List(c *gin.Context) {
	categoryName := c.Query("category")
	if categoryName == "" {
		h.BadRequest(c, "Query parameter 'category' is required")
		return
	}

	items, err := h.itemService.FilterByCategory(c.Request.Context(), categoryName)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByName returns a single item with its effective price.
// GET /items/:name
func (h *ItemHandler) GetByName(c *gin.Context) {
	item, err := h.itemService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Search returns items whose name contains the query substring.
// GET /search?item=<substring>
func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.itemService.Search(c.Request.Context(), c.Query("item"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Homepage returns the storefront homepage sections.
// GET /homepage
func (h *ItemHandler) Homepage(c *gin.Context) {
	sections, err := h.itemService.Homepage(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sections)
}

// Create adds an item to the catalog.
// POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update modifies an existing item.
// PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req catalogapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes an item from the catalog.
// DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateTag adds a tag.
// POST /tags
func (h *ItemHandler) CreateTag(c *gin.Context) {
	var req catalogapp.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tag, err := h.itemService.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tag)
}

// CreateSupplier adds a supplier.
// POST /suppliers
func (h *ItemHandler) CreateSupplier(c *gin.Context) {
	var req catalogapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.itemService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}
