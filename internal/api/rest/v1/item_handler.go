package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"forgekit/internal/domain/items"
	"forgekit/internal/pkg/strutil"
)

// ItemHandler defines the interface for handling item operations
type ItemHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// itemHandler struct holds the services
type itemHandler struct {
	itemService items.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService items.ItemService) ItemHandler {
	return &itemHandler{
		itemService: itemService,
	}
}

// Create stores a new item owned by the authenticated user
func (handler *itemHandler) Create(ctx *gin.Context) {
	var request ItemCreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	item, err := handler.itemService.Create(ctx, authenticatedUserID(ctx), request.Title, request.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating item: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, NewItemResponse(item))
}

// List fetches items optionally with query parameters
func (handler *itemHandler) List(ctx *gin.Context) {
	query := items.NewItemQuery()

	if title := ctx.Query("title"); len(title) > 0 {
		query.Title = title
	}

	if ownerID := ctx.Query("ownerId"); len(ownerID) > 0 {
		query.OwnerID = ownerID
	}

	if done := ctx.Query("done"); len(done) > 0 {
		isDone := strutil.ConvertToBool(done)
		query.Done = &isDone
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	list, err := handler.itemService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []ItemResponse{}
	for _, item := range list {
		listResponse = append(listResponse, NewItemResponse(item))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches an item by ID
func (handler *itemHandler) GetByID(ctx *gin.Context) {
	itemID := ctx.Param("id")

	item, err := handler.itemService.GetByID(ctx, itemID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("item with id %s not found", itemID)})
		return
	}

	ctx.JSON(http.StatusOK, NewItemResponse(item))
}

// UpdateByID applies an update to an item owned by the authenticated user
func (handler *itemHandler) UpdateByID(ctx *gin.Context) {
	itemID := ctx.Param("id")

	var request ItemUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	item, err := handler.itemService.UpdateByID(ctx, itemID, authenticatedUserID(ctx), request.ToItemUpdate())
	if err != nil {
		if errors.Is(err, items.ErrNotOwner) {
			ctx.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
			return
		}
		if errors.Is(err, items.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("item with id %s not found", itemID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating item: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NewItemResponse(item))
}

// DeleteByID deletes an item owned by the authenticated user
func (handler *itemHandler) DeleteByID(ctx *gin.Context) {
	itemID := ctx.Param("id")

	if err := handler.itemService.DeleteByID(ctx, itemID, authenticatedUserID(ctx)); err != nil {
		if errors.Is(err, items.ErrNotOwner) {
			ctx.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("item with id %s not found", itemID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted item with id %s", itemID)})
}
