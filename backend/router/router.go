package router

import (
	"net/http"

	"lost-and-found/backend/app/controllers"
	"lost-and-found/backend/app/middleware"
)

type Deps struct {
	HTTP   *controllers.HTTPController
	Auth   *controllers.AuthController
	Items  *controllers.ItemController
	Admin  *controllers.AdminController
	Upload *controllers.UploadController
	MW     *middleware.Auth
	Limit  *middleware.RateLimiter
}

func New(d Deps) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /api/health", d.HTTP.Health)
	mux.Handle("POST /api/auth/register", d.Limit.Limit(http.HandlerFunc(d.Auth.Register)))
	mux.Handle("POST /api/auth/login", d.Limit.Limit(http.HandlerFunc(d.Auth.Login)))
	mux.HandleFunc("GET /api/lost-items", d.Items.ListLost)
	mux.HandleFunc("GET /api/lost-items/{id}", d.Items.GetLost)
	mux.HandleFunc("GET /api/found-items", d.Items.ListFound)
	mux.HandleFunc("GET /api/found-items/{id}", d.Items.GetFound)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.Upload.Dir))))

	// authenticated
	mux.Handle("POST /api/auth/logout", d.MW.RequireAuth(http.HandlerFunc(d.Auth.Logout)))
	mux.Handle("GET /api/auth/me", d.MW.RequireAuth(http.HandlerFunc(d.Auth.Me)))
	mux.Handle("PUT /api/auth/change-password", d.MW.RequireAuth(http.HandlerFunc(d.Auth.ChangePassword)))
	mux.Handle("POST /api/lost-items", d.MW.RequireAuth(http.HandlerFunc(d.Items.CreateLost)))
	mux.Handle("PUT /api/lost-items/{id}", d.MW.RequireAuth(http.HandlerFunc(d.Items.UpdateLost)))
	mux.Handle("DELETE /api/lost-items/{id}", d.MW.RequireAuth(http.HandlerFunc(d.Items.DeleteLost)))
	mux.Handle("POST /api/found-items", d.MW.RequireAuth(http.HandlerFunc(d.Items.CreateFound)))
	mux.Handle("PUT /api/found-items/{id}", d.MW.RequireAuth(http.HandlerFunc(d.Items.UpdateFound)))
	mux.Handle("DELETE /api/found-items/{id}", d.MW.RequireAuth(http.HandlerFunc(d.Items.DeleteFound)))
	mux.Handle("GET /api/my-items", d.MW.RequireAuth(http.HandlerFunc(d.Items.MyItems)))
	mux.Handle("POST /api/upload", d.MW.RequireAuth(http.HandlerFunc(d.Upload.Upload)))

	// admin-only
	mux.Handle("GET /api/admin/users", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Users)))
	mux.Handle("GET /api/admin/statistics", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Statistics)))
	mux.Handle("PUT /api/admin/users/{id}/promote", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Promote)))
	mux.Handle("PUT /api/admin/users/{id}/demote", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Demote)))
	mux.Handle("PUT /api/admin/users/{id}/toggle-status", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.ToggleStatus)))
	mux.Handle("DELETE /api/admin/users/{id}", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.DeleteUser)))
	mux.Handle("GET /api/admin/logs", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Logs)))
	mux.Handle("GET /api/admin/activity", d.MW.RequireAdmin(http.HandlerFunc(d.Admin.Activity)))

	return mux
}
