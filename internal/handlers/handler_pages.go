package handlers

import (
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

// GETAuthGateHandler tells the auth pages to send already signed-in users home.
func GETAuthGateHandler(ctx *middlewares.AppContext) {
	response := AuthGateResponse{}

	if sess := auth.GetSafeSession(ctx); sess != nil && sess.User.ID != "" {
		home := "/"
		response.Redirect = &home
	}

	ctx.WriteJSON(http.StatusOK, response)
}

// GETProfileViewHandler picks the private profile when the visitor owns it, unless the
// public view is explicitly requested.
func GETProfileViewHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")
	if id == "" {
		ctx.SetJSONError(http.StatusBadRequest, "missing profile id")
		return
	}

	isPublic := ctx.Request.URL.Query().Get("public") == "true"

	var userName, companyID string
	if sess := auth.GetSafeSession(ctx); sess != nil {
		userName = sess.User.UserName
		companyID = sess.User.CompanyID
	}

	response := ProfileViewResponse{
		View:      ProfileViewPublic,
		UserID:    id,
		CompanyID: companyID,
	}

	if !isPublic && userName != "" && id == userName {
		response.View = ProfileViewPrivate
	}

	ctx.WriteJSON(http.StatusOK, response)
}

// GETChromeHandler returns the user shown in the header and sidebar.
func GETChromeHandler(ctx *middlewares.AppContext) {
	response := ChromeResponse{}

	if sess := auth.GetSafeSession(ctx); sess != nil {
		response.User = &sess.User
	}

	ctx.WriteJSON(http.StatusOK, response)
}
