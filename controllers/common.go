package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// authUserID pulls the authenticated user id set by the auth middleware.
// Writes a 401 and returns false when the context is missing or malformed.
func authUserID(c *gin.Context) (bson.ObjectID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(v.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth context"})
		return bson.ObjectID{}, false
	}
	return id, true
}

func authRole(c *gin.Context) models.Role {
	v, _ := c.Get("role")
	s, _ := v.(string)
	return models.Role(s)
}

func authEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	s, _ := v.(string)
	return s
}

// loadAuthUser fetches the full user record behind the token.
func loadAuthUser(c *gin.Context) (*models.User, bool) {
	uid, ok := authUserID(c)
	if !ok {
		return nil, false
	}
	usersCol := database.OpenCollection("users")
	var user models.User
	if err := usersCol.FindOne(c.Request.Context(), bson.M{"_id": uid}).Decode(&user); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}
