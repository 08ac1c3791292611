package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"jobportal-auth/internal/models"
	"jobportal-auth/internal/session"
	"jobportal-auth/internal/testutil"
)

const testCSRFToken = "csrf-token-for-tests"

// withCSRF attaches a CSRF cookie bound to testCSRFToken.
func withCSRF(tc *testutil.TestContext) *testutil.TestContext {
	sum := sha256.Sum256([]byte(testCSRFToken + testutil.TestSecret))
	return tc.WithCookie(&http.Cookie{
		Name:  tc.AppContext.Cookies.CSRFToken().Name,
		Value: testCSRFToken + "|" + hex.EncodeToString(sum[:]),
	})
}

func testUser() *models.User {
	return &models.User{
		ID:          "42",
		UserName:    "jdoe",
		Email:       "jdoe@example.com",
		FirstName:   "John",
		LastName:    "Doe",
		CompanyID:   "7",
		Type:        "employer",
		AccessToken: "access-1",
	}
}

func testToken() *session.Token {
	return session.NewToken(testUser(), time.Now(), 15*time.Minute)
}

func userResponse(user *models.User) *models.Response[models.User] {
	return &models.Response[models.User]{Success: true, Data: user}
}
