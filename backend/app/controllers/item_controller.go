package controllers

import (
	"net/http"

	"lost-and-found/backend/app/dto"
	"lost-and-found/backend/app/middleware"
	"lost-and-found/backend/app/models"
	"lost-and-found/backend/app/repo"
	"lost-and-found/backend/app/services"
)

type ItemController struct{ Items *services.ItemService }

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

func filterFromQuery(r *http.Request) repo.ItemFilter {
	q := r.URL.Query()
	return repo.ItemFilter{Status: q.Get("status"), Category: q.Get("category"), Search: q.Get("search")}
}

func (c *ItemController) ListLost(w http.ResponseWriter, r *http.Request) {
	items, err := c.Items.ListLost(filterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": items})
}

func (c *ItemController) GetLost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	item, err := c.Items.GetLost(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": item})
}

func (c *ItemController) CreateLost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.LostItemCreateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ItemName == "" || req.Category == "" || req.Description == "" || req.DateLost == "" ||
		req.LocationLost == "" || req.StudentName == "" || req.ContactNumber == "" ||
		req.Email == "" || req.StudentID == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	item := models.LostItem{
		UserID: claims.UserID, ItemName: req.ItemName, Category: req.Category,
		Description: req.Description, DateLost: req.DateLost, LocationLost: req.LocationLost,
		StudentName: req.StudentName, ContactNumber: req.ContactNumber,
		Email: req.Email, StudentID: req.StudentID, ImageURL: req.ImageURL,
		Status: "active",
	}
	if err := c.Items.CreateLost(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "message": "Lost item reported successfully", "id": item.ID,
	})
}

func (c *ItemController) UpdateLost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	var req dto.LostItemUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields := req.Fields()
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if err := c.Items.UpdateLost(claims, id, fields); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Item updated successfully"})
}

func (c *ItemController) DeleteLost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	if err := c.Items.DeleteLost(claims, id, clientIP(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Item deleted successfully"})
}

func (c *ItemController) ListFound(w http.ResponseWriter, r *http.Request) {
	items, err := c.Items.ListFound(filterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": items})
}

func (c *ItemController) GetFound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	item, err := c.Items.GetFound(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": item})
}

func (c *ItemController) CreateFound(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.FoundItemCreateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ItemName == "" || req.Category == "" || req.Description == "" || req.DateFound == "" ||
		req.LocationFound == "" || req.FinderName == "" || req.ContactNumber == "" {
		writeError(w, http.StatusBadRequest, "Required fields are missing")
		return
	}
	item := models.FoundItem{
		UserID: claims.UserID, ItemName: req.ItemName, Category: req.Category,
		Description: req.Description, DateFound: req.DateFound, LocationFound: req.LocationFound,
		FinderName: req.FinderName, ContactNumber: req.ContactNumber,
		Email: req.Email, StudentID: req.StudentID, ImageURL: req.ImageURL,
		Status: "active",
	}
	if err := c.Items.CreateFound(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "message": "Found item reported successfully", "id": item.ID,
	})
}

func (c *ItemController) UpdateFound(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	var req dto.FoundItemUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	fields := req.Fields()
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if err := c.Items.UpdateFound(claims, id, fields); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Item updated successfully"})
}

func (c *ItemController) DeleteFound(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	if err := c.Items.DeleteFound(claims, id, clientIP(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Item deleted successfully"})
}

func (c *ItemController) MyItems(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	owned, err := c.Items.OwnedBy(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "lost_items": owned.LostItems, "found_items": owned.FoundItems,
	})
}
