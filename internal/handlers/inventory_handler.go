package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/joshua-takyi/wastenot/internal/services"
)

func ListInventory(inv *services.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := inv.ListItems(c.Request.Context(), c.Query("category"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(items, ""))
	}
}

func ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(models.Categories, ""))
	}
}

func GetInventoryItem(inv *services.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		detail, err := inv.ItemDetail(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(detail, ""))
	}
}

// CreateInventoryItem adds a manually entered item. The caller's lead time
// is read from their profile right before the save.
func CreateInventoryItem(inv *services.InventoryService, profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.ItemDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			badRequest(c, err)
			return
		}

		ctx := c.Request.Context()
		identity := helpers.IdentityFrom(c)
		leadTime := profiles.LeadTime(ctx, identity)

		item, err := inv.AddItem(ctx, identity, draft, leadTime)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(item, models.MessageItemAdded))
	}
}

func UpdateInventoryItem(inv *services.InventoryService, profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			fail(c, models.ErrMissingItemID)
			return
		}

		var draft models.ItemDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			badRequest(c, err)
			return
		}

		ctx := c.Request.Context()
		identity := helpers.IdentityFrom(c)
		leadTime := profiles.LeadTime(ctx, identity)

		item, err := inv.UpdateItem(ctx, identity, id, draft, leadTime)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, models.MessageItemUpdated))
	}
}
