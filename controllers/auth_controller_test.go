package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register())
	r.POST("/auth/2fa/verify", VerifyTwoFactor())
	return r
}

func TestRegisterValidation(t *testing.T) {
	r := authValidationRouter()

	// role outside the signup set
	w := postJSON(r, "/auth/register", `{"fullName":"Jo","email":"jo@example.com","password":"longenough1","role":"ADMIN"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// short password
	w = postJSON(r, "/auth/register", `{"fullName":"Jo","email":"jo@example.com","password":"short","role":"PUBLISHER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// bad email
	w = postJSON(r, "/auth/register", `{"fullName":"Jo","email":"not-an-email","password":"longenough1","role":"PUBLISHER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyTwoFactorValidation(t *testing.T) {
	r := authValidationRouter()

	// code must be exactly six digits long
	w := postJSON(r, "/auth/2fa/verify", `{"email":"jo@example.com","purpose":"LOGIN","code":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/auth/2fa/verify", `{"email":"jo@example.com","purpose":"LOGIN"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
