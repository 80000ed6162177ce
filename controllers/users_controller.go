package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/dto"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /users/me
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := loadAuthUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /users/me
func UpdateMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateProfileDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.FullName != nil {
			name := strings.TrimSpace(*body.FullName)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "fullName cannot be empty"})
				return
			}
			set["fullName"] = name
		}
		if body.Company != nil {
			set["company"] = strings.TrimSpace(*body.Company)
		}

		usersCol := database.OpenCollection("users")
		res, err := usersCol.UpdateByID(c.Request.Context(), uid, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /users/me/password
func ChangeMyPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ChangeMyPasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, ok := loadAuthUser(c)
		if !ok {
			return
		}

		if err := utils.CheckPassword(user.PasswordHash, body.CurrentPassword); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(body.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		usersCol := database.OpenCollection("users")
		now := time.Now().UTC()
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{
				"passwordHash": newHash,
				"updatedAt":    now,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		_ = RevokeAllRefreshTokens(c, user.ID)
		utils.ClearRefreshCookie(c)

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /users/me/avatar
// multipart/form-data: avatar file (jpg/png/webp/gif)
func UploadAvatar() gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing avatar file"})
			return
		}
		if fh.Size > 5*1024*1024 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "avatar too large (max 5MB)"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		r2, err := utils.NewCloudClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
			return
		}

		url, err := utils.UploadImageToCloud(ctx, r2, "avatars/"+uid.Hex(), fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usersCol := database.OpenCollection("users")
		_, err = usersCol.UpdateByID(ctx, uid, bson.M{
			"$set": bson.M{"avatarUrl": url, "updatedAt": time.Now().UTC()},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
	}
}

// GET /admin/users?page=1&limit=20&role=PUBLISHER&isActive=true&q=...
func AdminGetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usersCol := database.OpenCollection("users")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		filter := bson.M{}
		if role := strings.TrimSpace(c.Query("role")); role != "" {
			filter["role"] = role
		}
		if b, err := utils.ParseBoolQuery(c.Query("isActive")); err == nil && b != nil {
			filter["isActive"] = *b
		}
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			escaped := regexp.QuoteMeta(q)
			filter["$or"] = []bson.M{
				{"email": bson.M{"$regex": escaped, "$options": "i"}},
				{"fullName": bson.M{"$regex": escaped, "$options": "i"}},
				{"company": bson.M{"$regex": escaped, "$options": "i"}},
			}
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := usersCol.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.User, 0)
		for cursor.Next(ctx) {
			var u models.User
			if err := cursor.Decode(&u); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, u)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := usersCol.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

// PATCH /admin/users/:id
func AdminUpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		var body dto.AdminUpdateUserDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Role != nil {
			if !models.IsValidRole(*body.Role) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
				return
			}
			set["role"] = *body.Role
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}

		usersCol := database.OpenCollection("users")
		res, err := usersCol.UpdateByID(c.Request.Context(), id, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		if body.IsActive != nil && !*body.IsActive {
			_ = RevokeAllRefreshTokens(c, id)
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /admin/users/:id
func AdminDeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}
		if uid == id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
			return
		}

		usersCol := database.OpenCollection("users")
		res, err := usersCol.DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		_ = RevokeAllRefreshTokens(c, id)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
