package controllers

import (
	"net/http"
	"strconv"

	"lost-and-found/backend/app/middleware"
	"lost-and-found/backend/app/services"
)

type AdminController struct{ Admin *services.AdminService }

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

func actorFromRequest(r *http.Request) services.Actor {
	claims := middleware.GetClaims(r.Context())
	return services.Actor{ID: claims.UserID, Name: claims.Email, IP: clientIP(r)}
}

func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := c.Admin.ListUsers(q.Get("role"), q.Get("search"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "users": users})
}

func (c *AdminController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Admin.Statistics()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "statistics": stats})
}

func (c *AdminController) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := c.Admin.Promote(actorFromRequest(r), id); err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "User promoted to admin successfully"})
}

func (c *AdminController) Demote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := c.Admin.Demote(actorFromRequest(r), id); err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Admin demoted to student successfully"})
}

func (c *AdminController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	active, err := c.Admin.ToggleStatus(actorFromRequest(r), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	msg := "User banned successfully"
	if active {
		msg = "User unbanned successfully"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": msg, "is_active": active})
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := c.Admin.DeleteUser(actorFromRequest(r), id); err != nil {
		writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "User deleted successfully"})
}

func (c *AdminController) Logs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	logs, err := c.Admin.Logs(limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "logs": logs})
}

func (c *AdminController) Activity(w http.ResponseWriter, r *http.Request) {
	activity, err := c.Admin.RecentActivity(50)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "activity": activity})
}
