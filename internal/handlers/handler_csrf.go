package handlers

import (
	"net/http"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/middlewares"
)

func GETCSRFHandler(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, CSRFResponse{CSRFToken: auth.IssueCSRFToken(ctx)})
}
